package model

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(time.Date(2024, time.March, 5, 13, 45, 0, 0, time.UTC))

	b, err := sonic.Marshal(struct {
		On  Date  `json:"on"`
		Opt *Date `json:"opt"`
	}{On: d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"on":"2024-03-05","opt":null}`, string(b))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		zero    bool
		wantErr bool
	}{
		{name: "plain date", in: `"2001-12-31"`, want: "2001-12-31"},
		{name: "rfc3339", in: `"2001-12-31T08:00:00Z"`, want: "2001-12-31"},
		{name: "empty string", in: `""`, wantErr: true},
		{name: "null", in: `null`, zero: true},
		{name: "garbage", in: `"31/12/2001"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.zero {
				assert.True(t, d.Time().IsZero())
				return
			}
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_EmptyStringInPayloadFails(t *testing.T) {
	var v struct {
		Start *Date `json:"fecha_inicio"`
	}
	assert.Error(t, sonic.Unmarshal([]byte(`{"fecha_inicio":""}`), &v))

	require.NoError(t, sonic.Unmarshal([]byte(`{"fecha_inicio":null}`), &v))
	assert.Nil(t, v.Start)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1999-01-02")
	require.NoError(t, err)
	assert.Equal(t, 1999, d.Time().Year())
	assert.Equal(t, time.January, d.Time().Month())

	_, err = ParseDate("1999-13-02")
	assert.Error(t, err)
}
