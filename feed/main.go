package main

import (
	"bufio"
	"errors"
	"github.com/allape/openkscan/logger"
	"go.bug.st/serial"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// A tiny console for driving an injector attached to a real serial port:
// reads command lines from stdin, drops comments and blank lines, and
// forwards the rest. Everything the injector prints comes back on stdout.

var log = logger.New("[feed]")

const DefaultName = "/dev/ttyACM0"

func main() {
	name := DefaultName
	if len(os.Args) > 1 {
		name = os.Args[1]
	}

	mode := &serial.Mode{
		BaudRate: 9600,
	}
	port, err := serial.Open(name, mode)
	if err != nil {
		log.Fatalln("unable to open port:", err)
	}

	go func(port serial.Port) {
		buf := make([]byte, 1024)
		for {
			n, err := port.Read(buf)
			if err != nil {
				log.Fatalln("read error:", err)
			}
			if n == 0 {
				log.Println("EOF")
				return
			}
			print(string(buf[:n]))
		}
	}(port)

	go func(s serial.Port) {
		reader := bufio.NewReader(os.Stdin)
		for {
			text, err := reader.ReadString('\n')
			if err != nil {
				if errors.Is(err, io.EOF) {
					log.Println("stdin drained")
					return
				}
				log.Fatalln("fail to read from stdin:", err)
			}

			text = StripComment(text)
			if text == "" {
				continue
			}
			log.Println(">", text)

			_, err = s.Write([]byte(text + "\n"))
			if err != nil {
				log.Fatalln("write error:", err)
			}
			err = s.Drain()
			if err != nil {
				log.Fatalln("flush error:", err)
			}
		}
	}(port)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	log.Println("awaiting signal")
	sig := <-sigs
	log.Println("exiting with", sig)

	_ = port.Close()
}

// StripComment removes a trailing "#" comment and surrounding whitespace.
// Returns "" for blank and comment-only lines.
func StripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
