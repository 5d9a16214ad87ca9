package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardnew/jspr/jsprtest"
)

// Test runs the YAML test-fixture harness over test_*.yml files found under
// Dir (default the current directory).
type Test struct {
	Dir string `arg:"" default:"." help:"Directory to search for test_*.yml fixtures" name:"dir"`
}

func (c *Test) Run(ctx context.Context) error {
	paths, err := findFixtures(c.Dir)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return fmt.Errorf("no test_*.yml fixtures found under %s", c.Dir)
	}

	var (
		total  int
		failed int
	)

	for _, path := range paths {
		fixture, err := jsprtest.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++

			continue
		}

		for _, result := range jsprtest.RunFixture(fixture) {
			total++

			if result.Err != nil {
				failed++

				fmt.Printf("FAIL %s: %s: %v\n", path, result.Case.Name, result.Err)

				continue
			}

			fmt.Printf("ok   %s: %s\n", path, result.Case.Name)
		}
	}

	fmt.Printf("%d/%d cases passed\n", total-failed, total)

	if failed > 0 {
		return exitError{code: 1}
	}

	return nil
}

func findFixtures(dir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		name := d.Name()
		if matched, _ := filepath.Match("test_*.yml", name); matched {
			paths = append(paths, path)
		}

		return nil
	})

	return paths, err
}
