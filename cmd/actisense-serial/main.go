// Package main bridges an Actisense NGT-1/W2K-1 gateway (or a log file of
// its binary stream) to stdin/stdout wire-format lines.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/tarm/serial"
	"go.uber.org/zap/zapcore"
	"go.viam.com/rdk/logging"

	"github.com/seabus/n2kbridge/actisense"
	"github.com/seabus/n2kbridge/common"
)

var (
	readonly  = flag.Bool("r", false, "readonly mode, data from stdin is not sent to device")
	writeonly = flag.Bool("w", false, "writeonly mode, data from device is not sent to stdout")
	passthru  = flag.Bool("p", false, "passthru mode, data from stdin is also sent to stdout")
	verbose   = flag.Bool("v", false, "also output device status messages as pseudo PGNs")
	debug     = flag.Bool("d", false, "debug logging")
	ebl       = flag.Bool("ebl", false, "input is an EBL log file")
	baudRate  = flag.Int("s", 115200, "baud rate")
	timeout   = flag.Int("t", 0, "quit when no message is received for this many seconds")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] device\n\n"+
			"<device> can be a serial device, a normal file containing a raw log,\n"+
			"or the address of a TCP server in the format tcp://<host>[:<port>]\n\n"+
			"Options:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := common.NewLogger(os.Stderr)
	if *debug {
		logging.GlobalLogLevel.SetLevel(zapcore.DebugLevel)
	}

	if err := run(ctx, logger, flag.Arg(0)); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger logging.Logger, name string) error {
	port, mode, isSerial, err := openStream(name)
	if err != nil {
		return err
	}

	dev := actisense.NewDevice(port, actisense.Config{
		Logger:               logger,
		Mode:                 mode,
		OutputDeviceMessages: *verbose,
	})
	defer dev.Close()

	if isSerial {
		if err := dev.Initialize(ctx); err != nil {
			return err
		}
	}

	msgs := make(chan *common.RawMessage)
	readErr := make(chan error, 1)
	if !*writeonly {
		go func() {
			for {
				msg, err := dev.ReadRawMessage(ctx)
				if err != nil {
					readErr <- err
					return
				}
				select {
				case msgs <- msg:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	if !*readonly {
		go writeFromStdin(ctx, logger, dev)
	}

	var idle *time.Timer
	var idleC <-chan time.Time
	if *timeout > 0 {
		idle = time.NewTimer(time.Duration(*timeout) * time.Second)
		defer idle.Stop()
		idleC = idle.C
	}

	out := bufio.NewWriter(os.Stdout)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		case <-idleC:
			return fmt.Errorf("timeout, no message received for %d seconds", *timeout)
		case msg := <-msgs:
			if idle != nil {
				idle.Reset(time.Duration(*timeout) * time.Second)
			}
			line, err := common.MarshalRawMessageToFastFormat(msg, common.MultiPacketsCoalesced)
			if err != nil {
				logger.Errorw("cannot marshal message", "error", err)
				continue
			}
			if _, err := out.WriteString(line); err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return err
			}
		}
	}
}

// writeFromStdin sends wire-format lines from stdin to the bus.
func writeFromStdin(ctx context.Context, logger logging.Logger, dev *actisense.Device) {
	parser := common.FindParserByName("PLAIN_OR_FAST")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 2000), 2000)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		var msg common.RawMessage
		if err := parser.Parse(line, &msg); err != nil {
			logger.Errorw("unable to parse incoming message", "line", line, "error", err)
			continue
		}
		if err := dev.WriteRawMessage(ctx, &msg); err != nil {
			logger.Errorw("unable to write message", "error", err)
			continue
		}
		if *passthru {
			fmt.Fprintln(os.Stdout, line)
		}
	}
}

// openStream opens a serial device, a TCP stream or a plain log file.
func openStream(name string) (io.ReadWriter, actisense.Mode, bool, error) {
	if strings.HasPrefix(name, "tcp:") {
		addr := strings.TrimPrefix(strings.TrimPrefix(name, "tcp:"), "//")
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return nil, actisense.ModeWire, false, fmt.Errorf("cannot open TCP stream %s: %w", name, err)
		}
		return conn, actisense.ModeWire, false, nil
	}

	info, err := os.Stat(name)
	if err == nil && info.Mode().IsRegular() {
		f, err := os.Open(name)
		if err != nil {
			return nil, actisense.ModeWire, false, err
		}
		mode := actisense.ModeFile
		if *ebl || strings.EqualFold(filepath.Ext(name), ".ebl") {
			mode = actisense.ModeEBL
		}
		return readOnlyStream{f}, mode, false, nil
	}

	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: *baudRate})
	if err != nil {
		return nil, actisense.ModeWire, false, fmt.Errorf("cannot open device %s: %w", name, err)
	}
	return port, actisense.ModeWire, true, nil
}

// readOnlyStream adapts a log file to io.ReadWriter; writes are refused.
type readOnlyStream struct {
	io.ReadCloser
}

func (readOnlyStream) Write([]byte) (int, error) {
	return 0, errors.New("cannot write to a log file")
}
