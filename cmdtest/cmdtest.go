// Package cmdtest runs YAML-described golden tests against in-process
// command implementations. Each YAML file under a testdata directory holds
// a "tests" sequence; every entry names a registered command, its argv and
// optional environment, and the expected stdout, stderr and exit code.
package cmdtest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestData is a single test case as laid out in YAML. Args is an array so
// interval literals with spaces and semicolons need no shell quoting.
type TestData struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Cmd         string            `yaml:"cmd"`
	Args        []string          `yaml:"args"`
	Env         map[string]string `yaml:"env,omitempty"`
	Expect      Expectation       `yaml:"expect"`
}

// Expectation is the recorded outcome of a test case.
type Expectation struct {
	Stdout   string `yaml:"stdout"`
	Stderr   string `yaml:"stderr,omitempty"`
	ExitCode int    `yaml:"exitCode,omitempty"`
}

// TestGroup holds the cases of one YAML file.
type TestGroup struct {
	Name  string     `yaml:"-"`
	Tests []TestData `yaml:"tests"`

	path string
}

// TestSuite is a set of test groups plus the commands they may invoke.
type TestSuite struct {
	groups   []*TestGroup
	commands map[string]func() int
	mu       sync.Mutex
}

// Read loads every .yaml/.yml file under dir into a suite.
func Read(dir string) (*TestSuite, error) {
	suite := &TestSuite{
		commands: make(map[string]func() int),
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		group := &TestGroup{Name: filepath.Base(path), path: path}
		if err := yaml.Unmarshal(content, group); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if len(group.Tests) == 0 {
			return fmt.Errorf("%s: no tests", path)
		}
		suite.groups = append(suite.groups, group)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suite, nil
}

// Register binds a command name used in the YAML "cmd" field to an
// in-process implementation returning an exit code.
func (s *TestSuite) Register(cmd string, run func() int) {
	s.commands[cmd] = run
}

// Run executes every case in the suite. With update true, mismatched
// expectations are overwritten with the observed output and the YAML files
// rewritten in place.
func (s *TestSuite) Run(t *testing.T, update bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		g := group
		t.Run(g.Name, func(t *testing.T) {
			changed := false
			for i := range g.Tests {
				test := &g.Tests[i]
				name := test.Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				t.Run(name, func(t *testing.T) {
					if s.runSingleTest(t, test, update) {
						changed = true
					}
				})
			}
			if update && changed {
				if err := g.persist(); err != nil {
					t.Fatalf("persist %s: %v", g.path, err)
				}
				fmt.Printf("cmdtest: updated %s\n", g.path)
			}
		})
	}
}

// runSingleTest runs one case with os.Args, os.Stdout, os.Stderr and the
// environment swapped out, and reports whether update mode changed the
// expectation.
func (s *TestSuite) runSingleTest(t *testing.T, test *TestData, update bool) bool {
	runFunc, ok := s.commands[test.Cmd]
	if !ok {
		t.Fatalf("Command '%s' not registered", test.Cmd)
	}

	oldArgs := os.Args
	oldStdout := os.Stdout
	oldStderr := os.Stderr
	type envSnapshot struct {
		value  string
		exists bool
	}
	oldEnv := make(map[string]envSnapshot)
	for k := range test.Env {
		val, exists := os.LookupEnv(k)
		oldEnv[k] = envSnapshot{value: val, exists: exists}
	}

	os.Args = append([]string{test.Cmd}, test.Args...)
	for k, v := range test.Env {
		os.Setenv(k, v)
	}

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	var exitCode int
	done := make(chan struct{}, 2)
	var gotStdout, gotStderr string

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		gotStdout = buf.String()
		done <- struct{}{}
	}()
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		gotStderr = buf.String()
		done <- struct{}{}
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("panic: %v", r)
				exitCode = -1
			}
		}()
		exitCode = runFunc()
	}()

	_ = wOut.Close()
	_ = wErr.Close()
	<-done
	<-done
	_ = rOut.Close()
	_ = rErr.Close()

	os.Stdout = oldStdout
	os.Stderr = oldStderr
	os.Args = oldArgs
	for k, snap := range oldEnv {
		if snap.exists {
			os.Setenv(k, snap.value)
		} else {
			os.Unsetenv(k)
		}
	}

	got := Expectation{Stdout: gotStdout, Stderr: gotStderr, ExitCode: exitCode}
	if got == test.Expect {
		return false
	}
	if update {
		test.Expect = got
		return true
	}
	if exitCode != test.Expect.ExitCode {
		t.Errorf("ExitCode mismatch:\nExpected: %d\nActual:   %d", test.Expect.ExitCode, exitCode)
	}
	if gotStdout != test.Expect.Stdout {
		t.Errorf("Stdout mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stdout, gotStdout)
	}
	if gotStderr != test.Expect.Stderr {
		t.Errorf("Stderr mismatch:\nExpected:\n%s\nActual:\n%s", test.Expect.Stderr, gotStderr)
	}
	return false
}

func (g *TestGroup) persist() error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(g); err != nil {
		enc.Close()
		return err
	}
	enc.Close()
	return os.WriteFile(g.path, buf.Bytes(), 0o644)
}
