// Released under an MIT license. See LICENSE.

package options

import (
	"strings"
	"testing"
)

func parse(t *testing.T, tty bool, argv ...string) *T {
	t.Helper()

	saved := terminal
	terminal = func() bool { return tty }

	t.Cleanup(func() { terminal = saved })

	o, err := Parse(argv, "brack test")
	if err != nil {
		t.Fatal(err)
	}

	return o
}

func TestProgram(t *testing.T) {
	o := parse(t, true, "hello.brk")

	if o.Program != "hello.brk" || o.Binary || o.Interactive {
		t.Fatalf("unexpected options: %+v", o)
	}

	o = parse(t, false, "-b", "-u", "-q", "8", "hello.brkc")

	if o.Program != "hello.brkc" || !o.Binary || !o.Unthreaded || o.Queue != 8 {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestCommand(t *testing.T) {
	o := parse(t, true, "-e", "[print hi]")

	if o.Command != "[print hi]" || o.Interactive {
		t.Fatalf("unexpected options: %+v", o)
	}

	o = parse(t, false, "-i", "-e", "[print hi]")

	if !o.Interactive {
		t.Fatal("expected -i to enable interactive mode")
	}
}

func TestCompile(t *testing.T) {
	o := parse(t, false, "compile", "in.brk", "out.brkc")

	if !o.Compile || o.Program != "in.brk" || o.Output != "out.brkc" {
		t.Fatalf("unexpected options: %+v", o)
	}

	o = parse(t, false, "decompile", "out.brkc")

	if !o.Decompile || !o.Binary || o.Program != "out.brkc" {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestInteractive(t *testing.T) {
	if o := parse(t, true); !o.Interactive {
		t.Fatal("expected interactive mode on a terminal")
	}

	if o := parse(t, false); o.Interactive {
		t.Fatal("expected no interactive mode without a terminal")
	}

	if o := parse(t, true, "-i"); o.Interactive {
		t.Fatal("expected -i to disable interactive mode on a terminal")
	}
}

func TestConfig(t *testing.T) {
	o := parse(t, false, "-d", "-c", "host.yaml")

	if o.Config != "host.yaml" || !o.Debug {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestMessage(t *testing.T) {
	if o := parse(t, false, "-h"); !strings.Contains(o.Message, "Usage:") {
		t.Fatalf("expected usage, got %q", o.Message)
	}

	if o := parse(t, false, "-v"); !strings.Contains(o.Message, "brack test") {
		t.Fatalf("expected version, got %q", o.Message)
	}
}

func TestInvalid(t *testing.T) {
	for _, argv := range [][]string{
		{"-q", "-1", "x"},
		{"-q", "lots", "x"},
		{"--nonesuch"},
	} {
		if _, err := Parse(argv, "brack test"); err == nil {
			t.Fatalf("%v: expected an error", argv)
		}
	}
}

func TestNoArguments(t *testing.T) {
	saved := terminal
	terminal = func() bool { return false }

	t.Cleanup(func() { terminal = saved })

	for _, argv := range [][]string{nil, {}} {
		o, err := Parse(argv, "brack test")
		if err != nil {
			t.Fatalf("%#v: %v", argv, err)
		}

		if o.Program != "" || o.Command != "" || o.Interactive || o.Message != "" {
			t.Fatalf("%#v: unexpected options: %+v", argv, o)
		}
	}
}
