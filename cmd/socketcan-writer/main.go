// Package main replays wire-format lines from stdin onto a Linux
// SocketCAN interface, pacing frames by the line timestamps.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/seabus/n2kbridge/analyzer"
	"github.com/seabus/n2kbridge/common"
	"github.com/seabus/n2kbridge/socketcan"
)

// frameSender is either a CAN socket or the stdout dump fallback.
type frameSender interface {
	SendFrame(frame socketcan.Frame) error
	Close() error
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <can-device>\n\n"+
			"<can-device> is a CAN interface name (e.g. can0), or 'stdout' or '-'\n"+
			"to dump raw CAN frames to standard output.\n", os.Args[0])
		os.Exit(1)
	}

	logger := common.NewLogger(os.Stderr)

	var sender frameSender
	if os.Args[1] == "stdout" || os.Args[1] == "-" {
		sender = stdoutSender{}
	} else {
		conn, err := socketcan.NewConnection(os.Args[1])
		if err != nil {
			logger.Error(err)
			os.Exit(1)
		}
		sender = conn
	}
	defer sender.Close()

	parser := common.FindParserByName("PLAIN_OR_FAST")
	var prevFrameTime time.Time

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 2000), 2000)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var msg common.RawMessage
		if err := parser.Parse(line, &msg); err != nil {
			// parsing failed, skip the line
			continue
		}

		// replay at the pace the log was captured at
		if !msg.Timestamp.IsZero() {
			if !prevFrameTime.IsZero() {
				if wait := msg.Timestamp.Sub(prevFrameTime); wait > 0 {
					time.Sleep(wait)
				} else if wait < 0 {
					logger.Errorf("timestamp back in time at %s", msg.Timestamp)
				}
			}
			prevFrameTime = msg.Timestamp
		}

		frames, err := socketcan.FramesFromRawMessage(&msg, analyzer.IsFastPacket(msg.PGN))
		if err != nil {
			logger.Errorw("skipping message", "pgn", msg.PGN, "error", err)
			continue
		}
		for _, frame := range frames {
			if err := sender.SendFrame(frame); err != nil {
				logger.Errorw("cannot send frame", "error", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

// stdoutSender dumps the struct can_frame wire layout to stdout, mostly
// for piping into other tools and for dry runs.
type stdoutSender struct{}

func (stdoutSender) SendFrame(frame socketcan.Frame) error {
	_, err := os.Stdout.Write(frame.Marshal())
	return err
}

func (stdoutSender) Close() error { return nil }
