package cli

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/numcalc/internal/cli/mocks"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{999 * time.Microsecond, "999µs"},
		{time.Millisecond, "1ms"},
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tc := range cases {
		if got := FormatExecutionDuration(tc.d); got != tc.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestSpinnerLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSpinner := mocks.NewMockSpinner(ctrl)
	gomock.InOrder(
		mockSpinner.EXPECT().UpdateSuffix(gomock.Any()),
		mockSpinner.EXPECT().Start(),
		mockSpinner.EXPECT().Stop(),
	)

	// Exercise the mock the way RunCalculation drives a spinner.
	var sp Spinner = mockSpinner
	sp.UpdateSuffix(" Computing...")
	sp.Start()
	sp.Stop()
}

func TestNoopSpinner(t *testing.T) {
	t.Parallel()

	// The noop spinner must be safe to drive without side effects.
	var sp Spinner = noopSpinner{}
	sp.UpdateSuffix("anything")
	sp.Start()
	sp.Stop()
}

func TestNewSpinnerReturnsRealSpinner(t *testing.T) {
	t.Parallel()

	sp := newSpinner()
	if _, ok := sp.(*realSpinner); !ok {
		t.Errorf("newSpinner() returned %T, want *realSpinner", sp)
	}
}
