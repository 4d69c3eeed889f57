package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/phil-mansfield/nnmath/io"
	"github.com/phil-mansfield/nnmath/num"
)

// FileGroup contains utility files for logging, output, and profiles.
type FileGroup struct {
	log, out, crossings, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.prof != nil {
		pprof.StopCPUProfile()
		if err := fg.prof.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}

	for _, f := range []*os.File{fg.out, fg.crossings} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.log != nil {
		log.SetOutput(os.Stderr)
		if err := fg.log.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var queryStr, exampleConfig, profile string
	vars := map[string]*string{
		"Query":         &queryStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&queryStr, "Query", "",
		"Configuration file containing a [Query] section and at least one "+
			"shape section.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Query' and 'Shapes'.",
	)
	flag.StringVar(
		&profile, "CPUProfile", "", "Writes a CPU profile to this file.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Query":
		wrap, err := io.ReadQueryConfig(queryStr)
		if err != nil {
			log.Fatal(err.Error())
		}

		// Errors are reported only after the FileGroup is closed so that
		// the profile and log are flushed.
		fg := &FileGroup{}
		err = setupFiles(fg, &wrap.Query, profile)
		if err == nil {
			switch wrap.Query.Precision {
			case "float32":
				err = queryMain[float32](wrap, fg)
			case "float64":
				err = queryMain[float64](wrap, fg)
			default:
				panic("Impossible")
			}
		}
		fg.Close()

		if err != nil {
			log.Fatal(err.Error())
		}

	case "ExampleConfig":
		switch exampleConfig {
		case "Query":
			fmt.Println(io.ExampleQueryFile)
		case "Shapes":
			fmt.Println(io.ExampleShapesFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Query' and 'Shapes'.",
			)
		}

	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	} else if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but nnmath only accepts "+
				"one flag at a time.", strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupFiles opens the log, output, and profile files requested by the user.
// Files opened before an error are left in fg to be closed.
func setupFiles(fg *FileGroup, con *io.QueryConfig, profile string) error {
	var err error
	if con.ValidLogFile() {
		if fg.log, err = os.Create(con.LogFile); err != nil {
			return err
		}
		log.SetOutput(fg.log)
	}

	if con.ValidOutput() {
		if fg.out, err = os.Create(con.Output); err != nil {
			return err
		}
	}

	if con.ValidCrossingsFile() {
		if fg.crossings, err = os.Create(con.CrossingsFile); err != nil {
			return err
		}
	}

	if profile != "" {
		if fg.prof, err = os.Create(profile); err != nil {
			return err
		}
		if err = pprof.StartCPUProfile(fg.prof); err != nil {
			return err
		}
	}
	return nil
}

// queryMain evaluates every point in the points file against every shape and
// writes the results.
func queryMain[T num.Real](wrap *io.QueryWrapper, fg *FileGroup) error {
	con := &wrap.Query
	t0 := time.Now()

	pts, err := io.ReadPoints[T](con)
	if err != nil {
		return err
	}
	shapes := io.BuildShapes[T](wrap)
	log.Printf("Read %d points and %d shapes from '%s'.",
		len(pts), shapes.Len(), con.PointsFile)

	rs := io.Evaluate(shapes, pts)

	wr := os.Stdout
	if fg.out != nil {
		wr = fg.out
	}

	switch con.OutputFormat {
	case "text":
		err = io.WriteResults(wr, rs)
	case "binary":
		err = io.WriteResultsBinary(wr, rs)
	}
	if err != nil {
		return err
	}

	if fg.crossings != nil {
		cs := io.FindCrossings(shapes)
		if err = io.WriteCrossings(fg.crossings, cs); err != nil {
			return err
		}
		log.Printf("Wrote %d sphere surface crossings to '%s'.",
			len(cs), con.CrossingsFile)
	}

	contained := 0
	for i := range rs {
		if rs[i].Contains {
			contained++
		}
	}
	log.Printf("Wrote %d results (%d contained) in %s.",
		len(rs), contained, time.Since(t0))
	return nil
}
