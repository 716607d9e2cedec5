// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "calendar date", in: "2026-10-23", want: "2026-10-23"},
		{name: "rfc3339 keeps its own day", in: "2026-10-23T23:30:00-05:00", want: "2026-10-23"},
		{name: "rfc3339 nano", in: "2026-10-23T08:00:00.123456Z", want: "2026-10-23"},
		{name: "surrounding spaces", in: " 2026-01-02 ", want: "2026-01-02"},
		{name: "garbage", in: "next friday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	var task struct {
		DueDate *Date `json:"dueDate"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2026-10-23"}`), &task))
	require.NotNil(t, task.DueDate)

	out, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dueDate":"2026-10-23"}`, string(out))

	task.DueDate = nil
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null}`), &task))
	assert.Nil(t, task.DueDate)

	assert.ErrorIs(t, json.Unmarshal([]byte(`{"dueDate":42}`), &task), ErrInvalidDate)
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
	}{
		{name: "time", src: time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC)},
		{name: "string", src: "2026-10-23"},
		{name: "bytes", src: []byte("2026-10-23")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, "2026-10-23", d.String())
		})
	}

	var d Date
	assert.ErrorIs(t, d.Scan(int64(1)), ErrInvalidDate)

	v, err := NewDate(time.Date(2026, 10, 23, 18, 0, 0, 0, time.UTC)).Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-10-23", v)
}

func TestDate_AddDaysAndBefore(t *testing.T) {
	friday := NewDate(time.Date(2026, 10, 17, 10, 30, 0, 0, time.UTC)).AddDays(6)

	assert.Equal(t, "2026-10-23", friday.String())
	assert.True(t, NewDate(time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC)).Before(friday))
	assert.False(t, friday.Before(friday))
}
