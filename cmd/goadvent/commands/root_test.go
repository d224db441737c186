package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

const trebuchetInput = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"

func TestDays(t *testing.T) {
	out, err := runCLI(t, "", "days")
	if err != nil {
		t.Fatalf("days failed: %v", err)
	}
	if !strings.Contains(out, "Day  1  Trebuchet?!\n") {
		t.Errorf("expected day 1 listed, got:\n%s", out)
	}
	if !strings.Contains(out, "Day 16  The Floor Will Be Lava  [animated]") {
		t.Errorf("expected day 16 marked as animated, got:\n%s", out)
	}
}

func TestSolve_InputFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "input.txt", trebuchetInput)

	out, err := runCLI(t, "", "solve", "1", "one", "--input", path)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if out != "Solution part One: 142\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSolve_Stdin(t *testing.T) {
	out, err := runCLI(t, "0 3 6 9 12 15\n", "solve", "9", "2", "-i", "-")
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if out != "Solution part Two: -3\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSolve_StoredInput(t *testing.T) {
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "inputs")
	if err := os.Mkdir(inputDir, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	writeFile(t, inputDir, "day15.txt", "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n")
	config := writeFile(t, dir, "config.yaml", "inputDir: "+inputDir+"\n")

	out, err := runCLI(t, "", "--config", config, "solve", "15", "two")
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if out != "Solution part Two: 145\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSolve_Errors(t *testing.T) {
	tests := [][]string{
		{"solve", "x", "one", "-i", "-"},
		{"solve", "1", "three", "-i", "-"},
		{"solve", "30", "one", "-i", "-"},
		{"solve", "1"},
		{"--config", "/does/not/exist.yaml", "days"},
	}
	for _, args := range tests {
		if _, err := runCLI(t, "", args...); err == nil {
			t.Errorf("expected %v to fail", args)
		}
	}
}

func TestAnimate(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "lens.txt", "rn=1,cm-,qp=3,cm=2,qp-,pc=4,ot=9,ab=5,pc-,pc=6,ot=7\n")
	config := writeFile(t, dir, "config.yaml", "animation:\n  maxFrames: 4\n  maxWidth: 64\n  maxHeight: 64\n")

	for _, name := range []string{"lens.gif", "lens.png"} {
		output := filepath.Join(dir, name)
		out, err := runCLI(t, "", "-c", config, "animate", "15", "one", "-i", input, "-o", output)
		if err != nil {
			t.Fatalf("animate %s failed: %v", name, err)
		}
		if !strings.HasPrefix(out, "Wrote ") {
			t.Errorf("unexpected output %q", out)
		}
		info, err := os.Stat(output)
		if err != nil || info.Size() == 0 {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}
}

func TestAnimate_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "input.txt", trebuchetInput)

	if _, err := runCLI(t, "", "animate", "1", "one", "-i", input, "-o", filepath.Join(dir, "x.gif")); err == nil {
		t.Error("expected error for a day without animation")
	}
	if _, err := runCLI(t, "", "animate", "15", "one", "-i", input, "-o", filepath.Join(dir, "x.bmp")); err == nil {
		t.Error("expected error for unsupported output format")
	}
	if _, err := runCLI(t, "", "animate", "15", "one", "-i", input); err == nil {
		t.Error("expected error for missing --output")
	}
}
