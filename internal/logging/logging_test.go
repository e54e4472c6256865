package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBufferSplitsLines(t *testing.T) {
	b := NewBuffer(10)
	fmt.Fprint(b, "one\ntw")
	if got := b.Lines(); len(got) != 1 || got[0] != "one" {
		t.Fatalf("Lines() = %v", got)
	}
	fmt.Fprint(b, "o\nthree\n")
	got := b.Lines()
	if len(got) != 3 || got[1] != "two" || got[2] != "three" {
		t.Errorf("Lines() = %v", got)
	}
}

func TestBufferCapacity(t *testing.T) {
	b := NewBuffer(2)
	for i := 0; i < 5; i++ {
		fmt.Fprintf(b, "line %d\n", i)
	}
	got := b.Lines()
	if len(got) != 2 || got[0] != "line 3" || got[1] != "line 4" {
		t.Errorf("Lines() = %v", got)
	}
}

func TestSetup(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	b := NewBuffer(0)
	closer, err := Setup(b, false, "")
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	log.Printf("connected")
	lines := b.Lines()
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "connected") {
		t.Errorf("Lines() = %v", lines)
	}
}

func TestSetupDebugFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	b := NewBuffer(0)
	closer, err := Setup(b, true, filepath.Join(t.TempDir(), "debug.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	log.Printf("to both")
	if b.Len() != 1 {
		t.Errorf("buffer has %d lines, want 1", b.Len())
	}
}
