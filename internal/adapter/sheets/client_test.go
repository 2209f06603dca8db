package sheets

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestDecodeCredentials(t *testing.T) {
	raw := `{"type":"service_account"}`

	got, err := DecodeCredentials(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, string(got))

	got, err = DecodeCredentials(base64.StdEncoding.EncodeToString([]byte(raw)))
	require.NoError(t, err)
	assert.Equal(t, raw, string(got))

	_, err = DecodeCredentials("   ")
	assert.ErrorIs(t, err, ErrNoCredentials)

	_, err = DecodeCredentials("not json!")
	assert.Error(t, err)

	_, err = DecodeCredentials(base64.StdEncoding.EncodeToString([]byte("plain text")))
	assert.Error(t, err)
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "", cellString(nil))
	assert.Equal(t, "abc", cellString("abc"))
	assert.Equal(t, "42", cellString(float64(42)))
	assert.Equal(t, "true", cellString(true))
}

type recorder struct{ errs []error }

func (r *recorder) RecordSheetRead(err error, _ time.Duration) { r.errs = append(r.errs, err) }

func TestReadRangeWithoutCredentials(t *testing.T) {
	obs := &recorder{}
	c := NewClient("", WithObserver(obs))

	_, err := c.ReadRange(context.Background(), "sheet", "Sheet1")

	assert.ErrorIs(t, err, ErrNoCredentials)
	require.Len(t, obs.errs, 1)
	assert.ErrorIs(t, obs.errs[0], ErrNoCredentials)
}

func TestReadRangeAgainstFakeAPI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/v4/spreadsheets/sheet-1/values/")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Sheet1!A1:C3","values":[["name","spend"],["Hero",12.5,true],["Solo"]]}`))
	}))
	defer srv.Close()

	c := NewClient(`{"type":"service_account"}`, WithClientOptions(
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	))
	// An explicit HTTP client means the key is not used for auth, so any
	// valid JSON passes.
	rows, err := c.ReadRange(context.Background(), "sheet-1", "Sheet1!A1:C3")

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"name", "spend"}, {"Hero", "12.5", "true"}, {"Solo"}}, rows)
}
