// Command sensorctl is a command line client for a sensorhub server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"sensorhub/client"
)

const usage = `usage: sensorctl [-url URL] [-key KEY] <command> [flags]

commands:
  create-key    -device NAME            issue an API key
  devices                               list device labels
  readings      [-device ID] [-type T]  list sensor readings
  latest        [-device ID]            latest sensor reading
  temperatures  [-device ID]            list temperature readings
  logs          [-device ID]            list device logs
  screenshots   [-device ID]            list screenshot metadata
  download      [-id N] [-device ID] [-o FILE]
                                        download a screenshot (latest when -id is 0)
  push          -device ID -type T -value V
                                        send a sensor reading
  command                               show the current device command

environment:
  SENSORHUB_URL      server URL (default http://localhost:5000)
  SENSORHUB_API_KEY  API key
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "sensorctl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := flag.NewFlagSet("sensorctl", flag.ContinueOnError)
	global.Usage = func() { fmt.Fprint(global.Output(), usage) }
	baseURL := global.String("url", envOr("SENSORHUB_URL", "http://localhost:5000"), "server URL")
	apiKey := global.String("key", os.Getenv("SENSORHUB_API_KEY"), "API key")
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		global.Usage()
		return fmt.Errorf("missing command")
	}

	c := client.New(*baseURL, *apiKey)
	cmd, rest := global.Arg(0), global.Args()[1:]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	device := fs.String("device", "", "device id")
	sensorType := fs.String("type", "", "sensor type")
	value := fs.Float64("value", 0, "reading value")
	id := fs.Int64("id", 0, "screenshot id")
	output := fs.String("o", "", "output file")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	switch cmd {
	case "create-key":
		if *device == "" {
			return fmt.Errorf("create-key: -device is required")
		}
		return printJSON(out)(c.CreateKey(ctx, *device))
	case "devices":
		return printJSON(out)(c.Devices(ctx))
	case "readings":
		return printJSON(out)(c.ListSensorReadings(ctx, *device, *sensorType))
	case "latest":
		return printJSON(out)(c.LatestSensorReading(ctx, *device))
	case "temperatures":
		return printJSON(out)(c.ListTemperatureReadings(ctx, *device))
	case "logs":
		return printJSON(out)(c.ListLogs(ctx, *device))
	case "screenshots":
		return printJSON(out)(c.ListScreenshots(ctx, *device))
	case "download":
		return download(ctx, c, *id, *device, *output, out)
	case "push":
		if *device == "" || *sensorType == "" {
			return fmt.Errorf("push: -device and -type are required")
		}
		return printJSON(out)(c.PushSensorReading(ctx, *device, *sensorType, *value))
	case "command":
		return printJSON(out)(c.Command(ctx))
	default:
		global.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// printJSON 결과를 들여쓰기 JSON 으로 출력
func printJSON(out io.Writer) func(v any, err error) error {
	return func(v any, err error) error {
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func download(ctx context.Context, c *client.Client, id int64, device, output string, out io.Writer) error {
	img, err := c.DownloadScreenshot(ctx, id, device)
	if err != nil {
		return err
	}
	if output == "" {
		output = img.Filename
	}
	if output == "" {
		output = "screenshot.bin"
	}
	if err := os.WriteFile(output, img.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintf(out, "saved %s (%d bytes, %s)\n", output, len(img.Data), img.ContentType)
	return nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
