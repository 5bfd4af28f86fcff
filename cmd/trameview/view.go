package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"trameview/internal/config"
	"trameview/internal/filesource"
	"trameview/internal/service"
)

const viewHelp = `commands:
  n, next       next frame
  p, prev       previous frame
  g, goto N     jump to frame N
  o, open PATH  open another capture file
  h, help       show this help
  q, quit       exit`

// view runs the line-driven frame viewer until quit or end of input.
func view(ctx context.Context, session *service.ViewSession, cfg *config.Config, files []string, stdin io.Reader, stdout io.Writer) error {
	open := func(path string) {
		session.Open(filesource.NewPathSource(path, cfg.Source.MaxBytes()))
		if err := session.Await(ctx); err != nil {
			fmt.Fprintf(stdout, "could not open %s: %v\n", path, err)
		}
	}

	if len(files) > 0 {
		open(files[0])
	}
	if err := render(session, stdout); err != nil {
		return err
	}

	nav := session.Navigator()
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(cmd) {
		case "n", "next":
			nav.Next()
		case "p", "prev", "previous":
			nav.Previous()
		case "g", "goto":
			n, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(stdout, "goto needs a frame number, got %q\n", arg)
				continue
			}
			nav.Seek(n)
		case "o", "open":
			if arg == "" {
				fmt.Fprintln(stdout, "open needs a file path")
				continue
			}
			open(arg)
		case "h", "help", "?":
			fmt.Fprintln(stdout, viewHelp)
			continue
		case "q", "quit", "exit":
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(stdout, "unknown command %q (h for help)\n", cmd)
			continue
		}

		if err := render(session, stdout); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func render(session *service.ViewSession, w io.Writer) error {
	if err := session.Navigator().Render(w); err != nil {
		return err
	}
	if name := session.Name(); name != "" {
		if _, err := fmt.Fprintf(w, "Picked file: %s\n", name); err != nil {
			return err
		}
	}
	return nil
}
