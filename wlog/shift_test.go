package wlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftEntryTotalMinutes(t *testing.T) {
	tests := []struct {
		name  string
		entry ShiftEntry
		want  int
	}{
		{
			name: "full day",
			entry: ShiftEntry{
				MorningIn:    TimeOfDay{9, 0},
				MorningOut:   TimeOfDay{12, 0},
				AfternoonIn:  TimeOfDay{1, 0},
				AfternoonOut: TimeOfDay{5, 30},
			},
			want: 450,
		},
		{
			name: "out-of-range hours still compute deterministically",
			entry: ShiftEntry{
				MorningIn:    TimeOfDay{9, 0},
				MorningOut:   TimeOfDay{12, 0},
				AfternoonIn:  TimeOfDay{13, 0},
				AfternoonOut: TimeOfDay{17, 30},
			},
			want: 450,
		},
		{
			name: "morning only",
			entry: ShiftEntry{
				MorningIn:  TimeOfDay{8, 15},
				MorningOut: TimeOfDay{11, 45},
			},
			want: 210,
		},
		{
			name: "morning minutes decrease with equal hours goes negative",
			entry: ShiftEntry{
				MorningIn:  TimeOfDay{9, 30},
				MorningOut: TimeOfDay{9, 0},
			},
			want: -30,
		},
		{
			name: "morning out hour before in hour contributes nothing",
			entry: ShiftEntry{
				MorningIn:  TimeOfDay{9, 0},
				MorningOut: TimeOfDay{8, 30},
			},
			want: 0,
		},
		{
			name: "afternoon equal to in contributes nothing",
			entry: ShiftEntry{
				AfternoonIn:  TimeOfDay{1, 0},
				AfternoonOut: TimeOfDay{1, 0},
			},
			want: 0,
		},
		{
			name: "afternoon one minute later counts",
			entry: ShiftEntry{
				AfternoonIn:  TimeOfDay{1, 0},
				AfternoonOut: TimeOfDay{1, 1},
			},
			want: 1,
		},
		{
			name:  "untouched entry",
			entry: ShiftEntry{},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.TotalMinutes())
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "9:30", want: TimeOfDay{9, 30}},
		{in: "0:00", want: TimeOfDay{0, 0}},
		{in: "12:59", want: TimeOfDay{12, 59}},
		{in: " 8:05 ", want: TimeOfDay{8, 5}},
		{in: "930", wantErr: true},
		{in: "13:00", wantErr: true},
		{in: "9:60", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "a:b", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
