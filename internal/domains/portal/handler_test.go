package portal_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/htmlpg/pvfll-portal/internal/domains/portal"
	"github.com/htmlpg/pvfll-portal/internal/domains/portal/portal_mocks"
	"github.com/htmlpg/pvfll-portal/internal/entities"
	"github.com/htmlpg/pvfll-portal/pkg/shell"
)

type serviceFields struct {
	network   *portal_mocks.MockINetworkService
	publisher *portal_mocks.MockIEventPublisher
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		network:   portal_mocks.NewMockINetworkService(t),
		publisher: portal_mocks.NewMockIEventPublisher(t),
	}
}

func serve(f *serviceFields, req *http.Request) *httptest.ResponseRecorder {
	e := portal.NewServer(portal.NewHandler(f.network, f.publisher))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/connect", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

func TestServer_CaptiveRedirects(t *testing.T) {
	paths := []string{
		"/hotspot-detect.html",
		"/generate_204",
		"/ncsi.txt",
		"/connecttest.txt",
		"/library/test/success.html",
		"/some/unknown/page",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := serve(newServiceFields(t), httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		})
	}
}

func TestHandler_Index(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(f *serviceFields)
		contains []string
	}{
		{
			name: "networks and connection",
			prepare: func(f *serviceFields) {
				f.network.EXPECT().ScanNetworks(mock.Anything).Return(entities.WifiNetworks{
					{SSID: "HomeNet", Signal: 80, Security: "WPA2"},
					{SSID: "Cafe <Free>", Signal: 40},
				}, nil).Once()
				f.network.EXPECT().CurrentConnection(mock.Anything).Return("HomeNet", true).Once()
				f.network.EXPECT().IPAddress(mock.Anything).Return("10.0.0.7", true).Once()
			},
			contains: []string{
				`value="HomeNet"`,
				"80% WPA2",
				"Cafe &lt;Free&gt;",
				"40% open",
				"Connected to <strong>HomeNet</strong> (10.0.0.7)",
			},
		},
		{
			name: "scan failed",
			prepare: func(f *serviceFields) {
				f.network.EXPECT().ScanNetworks(mock.Anything).Return(entities.WifiNetworks{}, errors.New("nmcli busy")).Once()
				f.network.EXPECT().CurrentConnection(mock.Anything).Return("", false).Once()
				f.network.EXPECT().IPAddress(mock.Anything).Return("", false).Once()
			},
			contains: []string{
				"No networks found",
				"Not connected",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFields(t)
			tt.prepare(f)

			rec := serve(f, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			for _, want := range tt.contains {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestHandler_Connect(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		prepare  func(f *serviceFields)
		wantCode int
		wantBody string
	}{
		{
			name:     "empty ssid",
			form:     url.Values{"ssid": {"   "}, "password": {"secret"}},
			prepare:  func(_ *serviceFields) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"No network selected"}`,
		},
		{
			name:     "missing ssid",
			form:     url.Values{},
			prepare:  func(_ *serviceFields) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"No network selected"}`,
		},
		{
			name:     "ssid too long",
			form:     url.Values{"ssid": {strings.Repeat("x", 33)}},
			prepare:  func(_ *serviceFields) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Invalid network name or password"}`,
		},
		{
			name:     "ssid over 32 bytes",
			form:     url.Values{"ssid": {strings.Repeat("é", 17)}},
			prepare:  func(_ *serviceFields) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Invalid network name or password"}`,
		},
		{
			name:     "password over 64 bytes",
			form:     url.Values{"ssid": {"Home"}, "password": {strings.Repeat("ü", 33)}},
			prepare:  func(_ *serviceFields) {},
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Invalid network name or password"}`,
		},
		{
			name: "multibyte ssid within 32 bytes",
			form: url.Values{"ssid": {strings.Repeat("é", 16)}},
			prepare: func(f *serviceFields) {
				f.network.EXPECT().Connect(mock.Anything, strings.Repeat("é", 16), "").Return(nil).Once()
				f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"message":"Connected to ` + strings.Repeat("é", 16) + `"}`,
		},
		{
			name: "connected",
			form: url.Values{"ssid": {" HomeNet "}, "password": {" secret123 "}},
			prepare: func(f *serviceFields) {
				f.network.EXPECT().Connect(mock.Anything, "HomeNet", "secret123").Return(nil).Once()
				f.publisher.EXPECT().Publish("portal.wifi.connected", entities.NewWifiConnectedEvent("HomeNet")).Return(nil).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"message":"Connected to HomeNet"}`,
		},
		{
			name: "connected, publish failed",
			form: url.Values{"ssid": {"Cafe"}},
			prepare: func(f *serviceFields) {
				f.network.EXPECT().Connect(mock.Anything, "Cafe", "").Return(nil).Once()
				f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("nats: connection closed")).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":true,"message":"Connected to Cafe"}`,
		},
		{
			name: "nmcli error on stderr",
			form: url.Values{"ssid": {"HomeNet"}, "password": {"wrong"}},
			prepare: func(f *serviceFields) {
				f.network.EXPECT().Connect(mock.Anything, "HomeNet", "wrong").Return(&shell.ExecError{
					Command:  "nmcli device wifi connect HomeNet",
					ExitCode: 4,
					Stderr:   "Error: Connection activation failed: Secrets were required, but not provided.\n",
				}).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":false,"message":"Connection activation failed: Secrets were required, but not provided."}`,
		},
		{
			name: "nmcli error on stdout",
			form: url.Values{"ssid": {"HomeNet"}},
			prepare: func(f *serviceFields) {
				f.network.EXPECT().Connect(mock.Anything, "HomeNet", "").Return(&shell.ExecError{
					ExitCode: 10,
					Stdout:   "Error No network with SSID 'HomeNet' found.",
				}).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":false,"message":"No network with SSID 'HomeNet' found."}`,
		},
		{
			name: "no output",
			form: url.Values{"ssid": {"HomeNet"}},
			prepare: func(f *serviceFields) {
				f.network.EXPECT().Connect(mock.Anything, "HomeNet", "").Return(&shell.ExecError{ExitCode: 1}).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":false,"message":"Connection failed"}`,
		},
		{
			name: "not a command error",
			form: url.Values{"ssid": {"HomeNet"}},
			prepare: func(f *serviceFields) {
				f.network.EXPECT().Connect(mock.Anything, "HomeNet", "").Return(errors.New("context deadline exceeded")).Once()
			},
			wantCode: http.StatusOK,
			wantBody: `{"success":false,"message":"Connection failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFields(t)
			tt.prepare(f)

			rec := serve(f, postForm(tt.form))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_Status(t *testing.T) {
	tests := []struct {
		name     string
		prepare  func(f *serviceFields)
		wantBody string
	}{
		{
			name: "connected",
			prepare: func(f *serviceFields) {
				f.network.EXPECT().CurrentConnection(mock.Anything).Return("HomeNet", true).Once()
				f.network.EXPECT().IPAddress(mock.Anything).Return("10.0.0.7", true).Once()
			},
			wantBody: `{"connected":"HomeNet","ip":"10.0.0.7"}`,
		},
		{
			name: "not connected",
			prepare: func(f *serviceFields) {
				f.network.EXPECT().CurrentConnection(mock.Anything).Return("", false).Once()
				f.network.EXPECT().IPAddress(mock.Anything).Return("", false).Once()
			},
			wantBody: `{"connected":null,"ip":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFields(t)
			tt.prepare(f)

			rec := serve(f, httptest.NewRequest(http.MethodGet, "/status", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
