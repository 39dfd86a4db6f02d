package mq

func EncodeReply(resp any) ([]byte, error) {
	return encodeReply(resp)
}
