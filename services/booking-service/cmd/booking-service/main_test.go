package main

import (
	"log/slog"
	"testing"
)

func TestDecodeHoursEvent(t *testing.T) {
	row, err := decodeHoursEvent([]byte(`{"business_id":"biz-1","weekday":2,"is_open":true,"open_minute":540,"close_minute":1080}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.BusinessID != "biz-1" || row.Weekday != 2 || !row.IsOpen {
		t.Fatalf("unexpected row: %+v", row)
	}
	if row.OpenMinute != 540 || row.CloseMinute != 1080 {
		t.Fatalf("unexpected window: %d-%d", row.OpenMinute, row.CloseMinute)
	}
}

func TestDecodeHoursEvent_ClosedDayKeepsZeroWindow(t *testing.T) {
	row, err := decodeHoursEvent([]byte(`{"business_id":"biz-1","weekday":0,"is_open":false,"open_minute":0,"close_minute":0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.IsOpen {
		t.Fatal("expected closed day")
	}
}

func TestDecodeHoursEvent_Rejects(t *testing.T) {
	cases := []string{
		`not json`,
		`{"weekday":1,"is_open":true,"open_minute":540,"close_minute":1080}`,
		`{"business_id":"biz-1","weekday":7,"is_open":true,"open_minute":540,"close_minute":1080}`,
		`{"business_id":"biz-1","weekday":-1,"is_open":false}`,
		`{"business_id":"biz-1","weekday":1,"is_open":true,"open_minute":1080,"close_minute":540}`,
	}
	for _, raw := range cases {
		if _, err := decodeHoursEvent([]byte(raw)); err == nil {
			t.Errorf("expected rejection for payload %s", raw)
		}
	}
}

func TestDecodeServiceEvent(t *testing.T) {
	businessID, serviceID, duration, err := decodeServiceEvent([]byte(`{"business_id":"biz-1","service_id":"svc-1","name":"Cut","duration_minutes":45}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if businessID != "biz-1" || serviceID != "svc-1" || duration != 45 {
		t.Fatalf("unexpected fields: %s %s %d", businessID, serviceID, duration)
	}
}

func TestDecodeServiceEvent_Rejects(t *testing.T) {
	cases := []string{
		`{"service_id":"svc-1","duration_minutes":45}`,
		`{"business_id":"biz-1","duration_minutes":45}`,
		`{"business_id":"biz-1","service_id":"svc-1","duration_minutes":0}`,
		`{"business_id":"biz-1","service_id":"svc-1","duration_minutes":-30}`,
	}
	for _, raw := range cases {
		if _, _, _, err := decodeServiceEvent([]byte(raw)); err == nil {
			t.Errorf("expected rejection for payload %s", raw)
		}
	}
}

func TestParseReminderOffsets_DefaultsWhenEmpty(t *testing.T) {
	offsets := parseReminderOffsets("", slog.Default())
	if len(offsets) != 1 {
		t.Fatalf("expected single default offset, got %d", len(offsets))
	}
}
