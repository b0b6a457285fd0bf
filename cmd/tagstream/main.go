// Command tagstream is a demo filter: it reads model output from stdin,
// scans it for tool tags, and prints the resulting event stream.
//
// Usage:
//
//	tagstream -tools get_weather,get_time < transcript.txt
//
// Flags:
//
//	-tools string   Comma-separated tool names to recognize (required)
//	-chunk int      Read size in bytes; small sizes exercise split markers (default 16)
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/tagstream"
)

var (
	textStyle  = lipgloss.NewStyle().Faint(true)
	startStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	endStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	callStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tagstream: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		toolsFlag = flag.String("tools", "", "Comma-separated tool names to recognize")
		chunkSize = flag.Int("chunk", 16, "Read size in bytes")
	)
	flag.Parse()

	if *toolsFlag == "" {
		return errors.New("-tools is required")
	}
	if *chunkSize <= 0 {
		return fmt.Errorf("-chunk must be positive, got %d", *chunkSize)
	}

	var tools []tagstream.Tool
	for _, name := range strings.Split(*toolsFlag, ",") {
		tools = append(tools, tagstream.Tool{Name: strings.TrimSpace(name)})
	}

	session, err := tagstream.New(tools, tagstream.WithErrorHandler(func(e *tagstream.ParseError) {
		fmt.Fprintln(os.Stderr, errStyle.Render(fmt.Sprintf("malformed body: %v", e)))
	}))
	if err != nil {
		return err
	}

	buf := make([]byte, *chunkSize)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			printEvents(session.Feed(string(buf[:n])))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			// Flush the open call before reporting the read failure.
			printEvents(session.Finish())
			return fmt.Errorf("read stdin: %w", err)
		}
	}
	printEvents(session.Finish())
	return nil
}

func printEvents(events []tagstream.Event) {
	for _, evt := range events {
		switch e := evt.(type) {
		case tagstream.EventText:
			fmt.Printf("%s %q\n", textStyle.Render("text"), e.Text)
		case tagstream.EventToolInputStart:
			fmt.Printf("%s %s id=%s\n", startStyle.Render("tool-input-start"), e.ToolName, e.ID)
		case tagstream.EventToolInputEnd:
			fmt.Printf("%s id=%s\n", endStyle.Render("tool-input-end"), e.ID)
		case tagstream.EventToolCall:
			fmt.Printf("%s %s id=%s input=%v\n", callStyle.Render("tool-call"), e.ToolName, e.ToolCallID, e.Input)
		}
	}
}
