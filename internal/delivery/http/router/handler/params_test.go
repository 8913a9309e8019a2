package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		want    int64
		wantErr bool
	}{
		{name: "valid id", param: "42", want: 42},
		{name: "non numeric", param: "abc", wantErr: true},
		{name: "zero", param: "0", wantErr: true},
		{name: "negative", param: "-5", wantErr: true},
		{name: "empty", param: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, "/")
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			id, err := pathID(c, "id")
			if tt.wantErr {
				require.Error(t, err)

				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, http.StatusNotFound, httpErr.Code)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestListInput(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantOffset int
		wantLimit  int
	}{
		{name: "defaults", target: "/", wantOffset: 0, wantLimit: defaultPageLimit},
		{name: "explicit", target: "/?offset=40&limit=10", wantOffset: 40, wantLimit: 10},
		{name: "limit clamped", target: "/?limit=5000", wantOffset: 0, wantLimit: maxPageLimit},
		{name: "negative offset ignored", target: "/?offset=-3", wantOffset: 0, wantLimit: defaultPageLimit},
		{name: "garbage ignored", target: "/?offset=abc&limit=xyz", wantOffset: 0, wantLimit: defaultPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := listInput(newTestContext(t, tt.target))

			assert.Equal(t, tt.wantOffset, input.Offset)
			assert.Equal(t, tt.wantLimit, input.Limit)
		})
	}
}

func TestActorID_MissingAuth(t *testing.T) {
	c := newTestContext(t, "/")

	_, err := actorID(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	err := HealthCheck(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
