// Command sdsim runs the built-in sample model. It reads a single
// input-spec line ("i1:v1 i2:v2 ...") from the file named as the first
// positional argument, runs the model, and writes tab-delimited output to
// stdout; --raw switches to the headerless single-line format used for
// embedding reference data.
package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/katalvlaran/sdsim/core"
	"github.com/katalvlaran/sdsim/examples/epidemic"
	"github.com/katalvlaran/sdsim/sim"
	"github.com/katalvlaran/sdsim/simio"
)

var rawOutput = flag.Bool("raw", false, "write raw output data without a header or newlines")

func main() {
	flag.Parse()
	defer glog.Flush()

	inputs := ""
	if flag.NArg() > 0 {
		line, err := readInputLine(flag.Arg(0))
		if err != nil {
			glog.Exitf("reading inputs: %v", err)
		}
		inputs = line
	}

	env := core.NewEnv()
	model := epidemic.New(env)
	runner := sim.NewRunner(env, model)

	out, err := runner.Run(inputs)
	if err != nil {
		glog.Exitf("running model: %v", err)
	}
	if *rawOutput {
		err = simio.WriteRaw(os.Stdout, out)
	} else {
		err = simio.WriteTable(os.Stdout, model.Header(), out, model.NumOutputs())
	}
	if err != nil {
		glog.Exitf("writing output: %v", err)
	}
	runner.Finish()
}

// readInputLine reads the first line of the input file.
func readInputLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	return "", scanner.Err()
}
