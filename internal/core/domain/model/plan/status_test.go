package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelroute/internal/core/domain/model/plan"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  plan.Status
		wantErr bool
	}{
		{name: "queued is valid", status: plan.Queued, wantErr: false},
		{name: "completed is valid", status: plan.Completed, wantErr: false},
		{name: "failed is valid", status: plan.Failed, wantErr: false},
		{name: "unknown is invalid", status: plan.Unknown, wantErr: true},
		{name: "out of range is invalid", status: plan.Status(42), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Queued", plan.Queued.String())
	assert.Equal(t, "Completed", plan.Completed.String())
	assert.Equal(t, "Failed", plan.Failed.String())
	assert.Equal(t, "Unknown", plan.Unknown.String())
	assert.Equal(t, "Unknown", plan.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    plan.Status
		wantErr bool
	}{
		{name: "queued", value: "Queued", want: plan.Queued},
		{name: "completed", value: "Completed", want: plan.Completed},
		{name: "failed", value: "Failed", want: plan.Failed},
		{name: "unknown string", value: "Unknown", wantErr: true},
		{name: "empty string", value: "", wantErr: true},
		{name: "garbage", value: "Solving", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := plan.StatusFromString(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Complete(t *testing.T) {
	t.Run("queued completes", func(t *testing.T) {
		got, err := plan.Queued.Complete()
		require.NoError(t, err)
		assert.Equal(t, plan.Completed, got)
	})

	t.Run("final and invalid states do not complete", func(t *testing.T) {
		for _, status := range []plan.Status{plan.Completed, plan.Failed, plan.Unknown} {
			_, err := status.Complete()
			assert.Error(t, err, status.String())
		}
	})
}

func TestStatus_Fail(t *testing.T) {
	t.Run("queued fails", func(t *testing.T) {
		got, err := plan.Queued.Fail()
		require.NoError(t, err)
		assert.Equal(t, plan.Failed, got)
	})

	t.Run("final and invalid states do not fail", func(t *testing.T) {
		for _, status := range []plan.Status{plan.Completed, plan.Failed, plan.Unknown} {
			_, err := status.Fail()
			assert.Error(t, err, status.String())
		}
	})
}
