package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrNotFound, ExitUser),
			want: "file not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading settings: %w", ErrInvalidConfig), ExitUser),
			want: "loading settings: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrNotFound, ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     true,
		},
		{
			name:       "unwrap through cockroach wrap",
			err:        NewExitError(Wrap(ErrValidationFailed, "checking env.yml"), ExitUser),
			wantTarget: ErrValidationFailed,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrNotFound, ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("errors.Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitUser},
		{"exit error", NewExitError(ErrUsage, ExitUser), ExitUser},
		{"wrapped exit error", Wrap(NewExitError(ErrUsage, 3), "running"), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"ErrNotFound", ErrNotFound, "file not found"},
		{"ErrInvalidConfig", ErrInvalidConfig, "invalid configuration"},
		{"ErrValidationFailed", ErrValidationFailed, "validation failed"},
		{"ErrUsage", ErrUsage, "invalid usage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.wantMsg)
			}
		})
	}
}

func TestWrapHelpers(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := Wrapf(ErrNotFound, "opening %s", "env.yml")
	if got, want := err.Error(), "opening env.yml: file not found"; got != want {
		t.Errorf("Wrapf().Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrNotFound) {
		t.Error("Is() should find ErrNotFound through Wrapf")
	}
	if got := UnwrapAll(err).Error(); got != "file not found" {
		t.Errorf("UnwrapAll().Error() = %q, want %q", got, "file not found")
	}
	if got := Newf("bad value %d", 7).Error(); got != "bad value 7" {
		t.Errorf("Newf().Error() = %q", got)
	}
}

func TestNewConstructors(t *testing.T) {
	t.Run("NewUserError", func(t *testing.T) {
		err := errors.New("user error")
		e := NewUserError(err, "check input")
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "check input" {
			t.Errorf("Suggestion = %q, want 'check input'", e.Suggestion)
		}
		if e.Reported {
			t.Error("Reported should default to false")
		}
	})

	t.Run("NewReportedError", func(t *testing.T) {
		e := NewReportedError(ErrValidationFailed)
		if e.Code != ExitUser || !e.Reported {
			t.Errorf("got Code=%d Reported=%v, want %d true", e.Code, e.Reported, ExitUser)
		}
	})

	t.Run("NewConfigError", func(t *testing.T) {
		e := NewConfigError(errors.New("config error"))
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion == "" {
			t.Error("Suggestion should not be empty")
		}
	})
}

func TestJoin(t *testing.T) {
	if Join(nil, nil) != nil {
		t.Error("Join(nil, nil) should return nil")
	}

	err := Join(ErrNotFound, nil, ErrInvalidConfig)
	if !Is(err, ErrNotFound) || !Is(err, ErrInvalidConfig) {
		t.Errorf("Join() should match both members, got %v", err)
	}
}

func TestMark(t *testing.T) {
	err := Mark(Wrap(errors.New("bad key"), "validating settings"), ErrInvalidConfig)
	if !Is(err, ErrInvalidConfig) {
		t.Error("Is() should match the marked sentinel")
	}
	if got := err.Error(); got != "validating settings: bad key" {
		t.Errorf("Mark() changed the message: %q", got)
	}
}
