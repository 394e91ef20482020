// Package main bridges a Digital Yacht iKonvert gateway (or a log file of
// its line protocol) to stdin/stdout wire-format lines.
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
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/tarm/serial"
	"go.uber.org/zap/zapcore"
	"go.viam.com/rdk/logging"

	"github.com/seabus/n2kbridge/common"
	"github.com/seabus/n2kbridge/ikonvert"
)

var (
	readonly     = flag.Bool("r", false, "readonly mode, data from stdin is not sent to device")
	writeonly    = flag.Bool("w", false, "writeonly mode, data from device is not sent to stdout")
	passthru     = flag.Bool("p", false, "passthru mode, data from stdin is also sent to stdout")
	verbose      = flag.Bool("v", false, "verbose")
	debug        = flag.Bool("d", false, "debug logging")
	hexMode      = flag.Bool("x", false, "hex instead of base64 mode")
	rxList       = flag.String("rx", "", "set PGN receive list (comma separated)")
	txList       = flag.String("tx", "", "set PGN transmit list (comma separated)")
	baudRate     = flag.Int("s", ikonvert.DefaultBaudRate, "baud rate (38400, 57600, 115200, 230400, 460800, 921600)")
	timeout      = flag.Int("t", 0, "quit when no message is received for this many seconds")
	resetTimeout = flag.Int("reset", 0, "re-initialize the device when no message is received for this many seconds")
	rateLimitOff bool
)

func init() {
	flag.BoolVar(&rateLimitOff, "l", false, "disable TX rate limits (use at own risk)")
	flag.BoolVar(&rateLimitOff, "rate-limit-off", false, "disable TX rate limits (use at own risk)")
}

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

	// transient device trouble gets a reconnect with exponential pacing
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.MaxInterval = 30 * time.Second
	eb.MaxElapsedTime = 0
	eb.Reset()

	for {
		err := run(ctx, logger, flag.Arg(0), eb)
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}
		logger.Errorw("bridge stopped", "error", err)
		if errors.Is(err, io.EOF) && !isLiveDevice(flag.Arg(0)) {
			// log files do not reconnect
			return
		}
		nb := eb.NextBackOff()
		if nb == backoff.Stop {
			os.Exit(1)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(nb):
		}
	}
}

func run(ctx context.Context, logger logging.Logger, name string, eb *backoff.ExponentialBackOff) error {
	port, isFile, err := openStream(name)
	if err != nil {
		return err
	}

	dev := ikonvert.NewDevice(port, ikonvert.Config{
		Logger:       logger,
		HexMode:      *hexMode,
		Verbose:      *verbose,
		RateLimitOff: rateLimitOff,
		RxList:       *rxList,
		TxList:       *txList,
		IsFile:       isFile,
	})
	defer dev.Close()

	if err := dev.Initialize(ctx); err != nil {
		return err
	}
	eb.Reset()

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

	var idle, reinit *time.Timer
	var idleC, reinitC <-chan time.Time
	if *timeout > 0 {
		idle = time.NewTimer(time.Duration(*timeout) * time.Second)
		defer idle.Stop()
		idleC = idle.C
	}
	if *resetTimeout > 0 && !isFile {
		reinit = time.NewTimer(time.Duration(*resetTimeout) * time.Second)
		defer reinit.Stop()
		reinitC = reinit.C
	}

	out := bufio.NewWriter(os.Stdout)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			if errors.Is(err, io.EOF) && isFile {
				return nil
			}
			return err
		case <-idleC:
			return fmt.Errorf("timeout, no message received for %d seconds", *timeout)
		case <-reinitC:
			logger.Info("no traffic, re-initializing device")
			if err := dev.Initialize(ctx); err != nil {
				return err
			}
			reinit.Reset(time.Duration(*resetTimeout) * time.Second)
		case msg := <-msgs:
			if idle != nil {
				idle.Reset(time.Duration(*timeout) * time.Second)
			}
			if reinit != nil {
				reinit.Reset(time.Duration(*resetTimeout) * time.Second)
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

// writeFromStdin sends wire-format lines from stdin to the bus. Lines
// already in iKonvert command form ($PDGY) are passed through verbatim.
func writeFromStdin(ctx context.Context, logger logging.Logger, dev *ikonvert.Device) {
	parser := common.FindParserByName("PLAIN_OR_FAST")
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 2000), 2000)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		for dev.Initializing() {
			select {
			case <-ctx.Done():
				return
			case <-time.After(50 * time.Millisecond):
			}
		}
		if strings.HasPrefix(line, "$PDGY") {
			if err := dev.WriteCommand(ctx, line); err != nil {
				logger.Errorw("unable to write command", "error", err)
			}
		} else {
			var msg common.RawMessage
			if err := parser.Parse(line, &msg); err != nil {
				logger.Errorw("unable to parse incoming message", "line", line, "error", err)
				continue
			}
			if err := dev.WriteRawMessage(ctx, &msg); err != nil {
				logger.Errorw("unable to write message", "error", err)
				continue
			}
		}
		if *passthru {
			fmt.Fprintln(os.Stdout, line)
		}
	}
}

func isLiveDevice(name string) bool {
	if strings.HasPrefix(name, "tcp:") {
		return true
	}
	info, err := os.Stat(name)
	return err != nil || !info.Mode().IsRegular()
}

// openStream opens a serial device, a TCP stream or a plain log file.
// TCP streams and log files skip the init handshake like the original
// bridge does.
func openStream(name string) (io.ReadWriter, bool, error) {
	if strings.HasPrefix(name, "tcp:") {
		addr := strings.TrimPrefix(strings.TrimPrefix(name, "tcp:"), "//")
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return nil, false, fmt.Errorf("cannot open TCP stream %s: %w", name, err)
		}
		return conn, true, nil
	}

	info, err := os.Stat(name)
	if err == nil && info.Mode().IsRegular() {
		f, err := os.Open(name)
		if err != nil {
			return nil, false, err
		}
		return readOnlyStream{f}, true, nil
	}

	port, err := serial.OpenPort(&serial.Config{Name: name, Baud: *baudRate})
	if err != nil {
		return nil, false, fmt.Errorf("cannot open device %s: %w", name, err)
	}
	return port, false, nil
}

// readOnlyStream adapts a log file to io.ReadWriter; writes are refused.
type readOnlyStream struct {
	io.ReadCloser
}

func (readOnlyStream) Write([]byte) (int, error) {
	return 0, errors.New("cannot write to a log file")
}
