package cli

// Originally from https://github.com/canboat/canboat (Apache License, Version 2.0)
// (C) 2009-2023, Kees Verruijt, Harlingen, The Netherlands.

// This file is part of CANboat.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"go.viam.com/rdk/logging"

	"github.com/seabus/n2kbridge/analyzer"
	"github.com/seabus/n2kbridge/common"
)

type explainMode int

const (
	explainModeNone explainMode = iota
	explainModeText
	explainModeXML
	explainModeNgtXML
	explainModeIkXML
)

// An ExplainCLI exports the PGN database the way the analyzer understands it.
type ExplainCLI struct {
	exp  *analyzer.Explainer
	mode explainMode
}

// NewExplainCLI parses explain arguments and returns a runnable ExplainCLI.
func NewExplainCLI(args []string) (*ExplainCLI, error) {
	progNameAsExeced := args[0]

	conf := analyzer.NewConfig(common.NewLogger(os.Stderr))
	mode := explainModeNone

	for argIdx := 1; argIdx < len(args); argIdx++ {
		arg := args[argIdx]

		//nolint:gocritic
		if strings.EqualFold(arg, "-explain") {
			mode = explainModeText
		} else if strings.EqualFold(arg, "-explain-xml") {
			mode = explainModeXML
		} else if strings.EqualFold(arg, "-explain-ngt-xml") {
			mode = explainModeNgtXML
		} else if strings.EqualFold(arg, "-explain-ik-xml") {
			mode = explainModeIkXML
		} else if strings.EqualFold(arg, "-camel") {
			camel := false
			conf.CamelCase = &camel
		} else if strings.EqualFold(arg, "-upper-camel") {
			camel := true
			conf.CamelCase = &camel
		} else if strings.EqualFold(arg, "-v1") {
			// v1 output differs only in field naming, which the camel
			// options already control here.
			camel := false
			conf.CamelCase = &camel
		} else if strings.EqualFold(arg, "-d") {
			logging.GlobalLogLevel.SetLevel(zapcore.DebugLevel)
		} else if strings.EqualFold(arg, "-version") {
			fmt.Fprintf(os.Stdout, "%s\n", Version)
			return nil, &common.ExitError{Code: 0}
		} else {
			return nil, explainUsage(progNameAsExeced, arg, os.Stdout)
		}
	}
	if mode == explainModeNone {
		return nil, explainUsage(progNameAsExeced, "", os.Stdout)
	}

	exp, err := analyzer.NewExplainer(conf)
	if err != nil {
		return nil, common.Abort(conf.Logger, true, "analyzer initialization failed: %v", err)
	}
	return &ExplainCLI{exp: exp, mode: mode}, nil
}

// Run writes the selected export to stdout.
func (c *ExplainCLI) Run() error {
	return c.RunTo(os.Stdout)
}

// RunTo writes the selected export to the given writer.
func (c *ExplainCLI) RunTo(w io.Writer) error {
	switch c.mode {
	case explainModeText:
		c.exp.ExplainText(w)
	case explainModeXML:
		c.exp.ExplainXML(w, true, false, false)
	case explainModeNgtXML:
		c.exp.ExplainXML(w, false, true, false)
	case explainModeIkXML:
		c.exp.ExplainXML(w, false, false, true)
	default:
		return fmt.Errorf("no export mode selected")
	}
	return nil
}

func explainUsage(progNameAsExeced, invalidArgName string, writer io.Writer) error {
	if invalidArgName != "" {
		fmt.Fprintf(writer, "Unknown or invalid argument %s\n", invalidArgName)
	}
	fmt.Fprintf(writer, "Usage: %s -explain | -explain-xml | -explain-ngt-xml | -explain-ik-xml"+
		" [-camel | -upper-camel] [-v1] [-d] [-version]\n", progNameAsExeced)
	fmt.Fprintf(writer, "     -explain          Export the PGN database in text format\n")
	fmt.Fprintf(writer, "     -explain-xml      Export the PGN database in XML format\n")
	fmt.Fprintf(writer, "     -explain-ngt-xml  Export the Actisense PGN database in XML format\n")
	fmt.Fprintf(writer, "     -explain-ik-xml   Export the iKonvert PGN database in XML format\n")
	fmt.Fprintf(writer, "     -camel            Show fieldnames in normalCamelCase\n")
	fmt.Fprintf(writer, "     -upper-camel      Show fieldnames in UpperCamelCase\n")
	fmt.Fprintf(writer, "     -v1               Produce the legacy field naming\n")
	fmt.Fprintf(writer, "     -d                Print logging from level ERROR, INFO and DEBUG\n")
	fmt.Fprintf(writer, "     -version          Print the version of the program and quit\n")
	fmt.Fprintf(writer, "\n")
	return &common.ExitError{Code: 1}
}
