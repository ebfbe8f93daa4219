package domain

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Run("malformed input names file and line", func(t *testing.T) {
		err := error(&MalformedInputError{Path: "list1.txt", Line: 4, Err: errors.New("empty identifier")})
		msg := err.Error()
		if !strings.Contains(msg, "list1.txt") || !strings.Contains(msg, "line 4") {
			t.Errorf("unexpected message: %s", msg)
		}
	})

	t.Run("file not found unwraps", func(t *testing.T) {
		err := error(&FileNotFoundError{Path: "missing.txt", Err: fs.ErrNotExist})
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("expected FileNotFoundError to unwrap to fs.ErrNotExist")
		}
	})

	t.Run("output write names path", func(t *testing.T) {
		err := error(&OutputWriteError{Path: "/out/lists/union.txt", Err: fs.ErrPermission})
		if !strings.Contains(err.Error(), "/out/lists/union.txt") {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})

	t.Run("arity default range", func(t *testing.T) {
		err := &UnsupportedArityError{Arity: 4}
		if !strings.Contains(err.Error(), "1-3") {
			t.Errorf("unexpected message: %s", err.Error())
		}
		err = &UnsupportedArityError{Arity: 1, Want: "2-3"}
		if !strings.Contains(err.Error(), "2-3") {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})
}
