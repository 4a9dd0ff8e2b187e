package main

import (
	"context"
	"io"
	"os"

	"github.com/GadgetReboot/GR-StepperIO/controller"
	"github.com/GadgetReboot/GR-StepperIO/ui"
)

func main() {
	if os.Getenv("ENABLE_UI") == "true" {
		runUI()
		return
	}

	runCLI()
}

func runUI() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	benchUI := ui.NewBenchUI()

	// With a port in the environment, connect immediately; otherwise
	// the UI asks for the connection settings first.
	if os.Getenv("STEPPERIO_PORT") != "" {
		c, err := controller.NewFromEnv()
		if err != nil {
			panic(err)
		}
		defer c.Close()

		r, w := io.Pipe()

		// read from Stdin also
		go func() {
			defer w.Close()
			io.Copy(w, os.Stdin)
		}()

		go func() {
			err := c.Run(ctx, r, io.MultiWriter(os.Stdout, benchUI))
			if err != nil {
				panic(err)
			}
		}()

		benchUI.Run(ctx, w)
		return
	}

	benchUI.Launch(ctx, func(cfg controller.Config) (io.Writer, error) {
		c, err := controller.New(cfg)
		if err != nil {
			return nil, err
		}
		go func() {
			defer c.Close()
			c.Run(ctx, readerNone{}, io.MultiWriter(os.Stdout, benchUI))
		}()
		return c, nil
	})
}

func runCLI() {
	c, err := controller.NewFromEnv()
	if err != nil {
		panic(err)
	}
	defer c.Close()

	err = c.Run(context.Background(), os.Stdin, os.Stdout)
	if err != nil {
		panic(err)
	}
}

// readerNone blocks forever; in UI mode commands come from the buttons,
// not a stream.
type readerNone struct{}

func (readerNone) Read([]byte) (int, error) {
	select {}
}
