// Package main is an example of using analyzer as a library: it decodes a
// log file of wire-format lines and prints each message as JSON.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/seabus/n2kbridge/analyzer"
	"github.com/seabus/n2kbridge/common"
)

func main() {
	if len(os.Args) != 2 {
		panic("need file to parse")
	}
	dataFile, err := os.Open(os.Args[1])
	if err != nil {
		panic(err)
	}
	defer dataFile.Close()

	conf := analyzer.NewConfig(common.NewLogger(os.Stderr))
	ana, err := analyzer.NewAnalyzer(conf)
	if err != nil {
		panic(err)
	}

	reader := bufio.NewReader(dataFile)
	for {
		line, _, err := reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			panic(err)
		}
		msg, hasMsg, err := ana.ProcessMessage(string(line))
		if err != nil {
			panic(err)
		}
		if !hasMsg {
			continue
		}
		md, err := json.MarshalIndent(msg, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Fprintln(os.Stdout, string(md))
	}
}
