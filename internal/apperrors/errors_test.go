package apperrors

import (
	"errors"
	"testing"
)

func TestKindOfRecognizesTypedErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"config", Config("op", "msg"), KindConfig},
		{"schema", Schema("op", "msg"), KindSchema},
		{"io", IO("op", "msg", errors.New("boom")), KindIO},
		{"logic", Logic("op", "msg"), KindLogic},
		{"validation", Validation("op", "msg"), KindValidation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := KindOf(c.err); got != c.want {
				t.Errorf("KindOf() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestKindOfDefaultsUntypedErrorsToLogic(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindLogic {
		t.Errorf("KindOf(plain) = %v, want KindLogic", got)
	}
}

func TestExitCodes(t *testing.T) {
	if KindConfig.ExitCode() != 2 {
		t.Errorf("KindConfig exit code = %d, want 2", KindConfig.ExitCode())
	}
	if KindValidation.ExitCode() != 3 {
		t.Errorf("KindValidation exit code = %d, want 3", KindValidation.ExitCode())
	}
	for _, k := range []Kind{KindSchema, KindIO, KindLogic} {
		if k.ExitCode() != 1 {
			t.Errorf("%v exit code = %d, want 1", k, k.ExitCode())
		}
	}
}

func TestAsUnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := IO("Save", "write failed", cause)

	e, ok := As(err)
	if !ok {
		t.Fatal("As() = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not see through to the wrapped cause")
	}
	if e.Kind != KindIO {
		t.Errorf("Kind = %v, want KindIO", e.Kind)
	}
}

func TestAsRejectsUntypedErrors(t *testing.T) {
	if _, ok := As(errors.New("plain")); ok {
		t.Error("As() = true for a plain error, want false")
	}
}
