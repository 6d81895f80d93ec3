// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Command csv2report renders a CSV file as an HTML, xlsx or PDF report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/UNO-SOFT/reporttable"
	"github.com/UNO-SOFT/reporttable/html"
	"github.com/UNO-SOFT/reporttable/pdf"
	"github.com/UNO-SOFT/reporttable/xlsx"
	"github.com/UNO-SOFT/zlog/v2"
	"github.com/klauspost/compress/gzhttp"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

// reportFlags are the flags describing the report, common to the commands.
type reportFlags struct {
	charset    string
	date       string
	columns    string
	labels     string
	widths     string
	attrs      string
	titles     stringsFlag
	widthRatio float64
	serial     bool
	noDate     bool
}

func (rf *reportFlags) register(fs *flag.FlagSet) {
	fs.Var(&verbose, "v", "logging verbosity")
	fs.StringVar(&rf.charset, "charset", reporttable.EncName, "csv charset name")
	fs.Var(&rf.titles, "title", "heading above the table (can be repeated)")
	fs.StringVar(&rf.date, "date", time.Now().Format(reporttable.DateFormat), "date shown above the headings")
	fs.BoolVar(&rf.noDate, "no-date", false, "do not show the date")
	fs.StringVar(&rf.columns, "columns", "", "comma separated list of the columns (default: all)")
	fs.StringVar(&rf.labels, "labels", "", "header labels, as column=label,...")
	fs.StringVar(&rf.widths, "widths", "", "column widths, as column=width,... (use "+reporttable.SerialColumn+" for the serial column)")
	fs.Float64Var(&rf.widthRatio, "width-ratio", 1, "xlsx column width multiplier")
	fs.BoolVar(&rf.serial, "serial", false, "prepend a serial number column")
	fs.StringVar(&rf.attrs, "attrs", "", "HTML table attributes")
}

func (rf *reportFlags) exporters() map[string]reporttable.Exporter {
	return map[string]reporttable.Exporter{
		"html": html.Exporter{Options: html.Options{Attributes: rf.attrs}},
		"xlsx": xlsx.Exporter{Logger: logger, WidthRatio: rf.widthRatio},
		"pdf":  pdf.Exporter{Logger: logger},
	}
}

// load reads the CSV file and builds the report of it.
func (rf *reportFlags) load(fn string) (*reporttable.Report, error) {
	cr, err := reporttable.OpenCsv(fn, rf.charset)
	if err != nil {
		return nil, err
	}
	defer cr.Close()
	recs, err := reporttable.ReadCSV(cr.Reader)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", fn, err)
	}
	columns := recs.Header
	if rf.columns != "" {
		columns = splitList(rf.columns)
	}
	labels, err := parsePairs(rf.labels)
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}
	widths, err := parseWidths(rf.widths)
	if err != nil {
		return nil, fmt.Errorf("widths: %w", err)
	}
	opts := []reporttable.Option{
		reporttable.WithExtractor(recs.Extract),
		reporttable.WithLabels(labels),
		reporttable.WithWidths(widths),
	}
	if rf.serial {
		opts = append(opts, reporttable.WithSerial())
	}
	stem := "report"
	if !(fn == "" || fn == "-") {
		stem = strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
	}
	rep := reporttable.NewReport(reporttable.New(recs, columns, opts...), stem, rf.titles...)
	rep.Date = rf.date
	if rf.noDate {
		rep.Date = ""
	}
	logger.Debug("loaded", "file", fn, "columns", columns, "rows", recs.Len())
	return rep, nil
}

// render the CSV file fn into out ("-" is stdout, "" is fn with the format's extension).
//
// The format is the extension of out if not given, html by default.
func (rf *reportFlags) render(fn, out, format string) error {
	format = strings.ToLower(format)
	if format == "" {
		format = strings.ToLower(strings.TrimPrefix(filepath.Ext(out), "."))
	}
	if format == "" {
		format = "html"
	}
	e, ok := rf.exporters()[format]
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}
	rep, err := rf.load(fn)
	if err != nil {
		return err
	}
	if out == "" && fn != "" && fn != "-" {
		out = strings.TrimSuffix(fn, filepath.Ext(fn)) + e.Ext()
	}
	if out == "" || out == "-" {
		return e.Export(os.Stdout, rep)
	}
	rep.Filename = strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	fh, err := os.Create(out)
	if err != nil {
		return err
	}
	defer fh.Close()
	if err = e.Export(fh, rep); err != nil {
		return fmt.Errorf("export %q: %w", out, err)
	}
	err = fh.Close()
	logger.Info("written", "file", out, "format", format, "error", err)
	return err
}

func Main() error {
	var rf reportFlags
	fs := flag.NewFlagSet("csv2report", flag.ContinueOnError)
	rf.register(fs)
	flagOut := fs.String("o", "", "output file name (default input file + format extension)")
	flagFormat := fs.String("format", "", "output format: html, xlsx or pdf (default: by output extension, or html)")

	serveFS := flag.NewFlagSet("serve", flag.ContinueOnError)
	var serveRF reportFlags
	serveRF.register(serveFS)
	flagAddr := serveFS.String("addr", "localhost:8080", "address to listen on")
	serveCmd := ffcli.Command{Name: "serve", FlagSet: serveFS,
		ShortUsage: "csv2report serve [flags] file.csv",
		ShortHelp:  "serve the report in all formats over HTTP",
		Options:    []ff.Option{ff.WithEnvVarPrefix("CSV2REPORT")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			return serve(ctx, *flagAddr, &serveRF, args[0])
		},
	}

	app := ffcli.Command{Name: "csv2report", FlagSet: fs,
		ShortUsage:  "csv2report [flags] file.csv",
		Options:     []ff.Option{ff.WithEnvVarPrefix("CSV2REPORT")},
		Subcommands: []*ffcli.Command{&serveCmd},
		Exec: func(ctx context.Context, args []string) error {
			var fn string
			if len(args) != 0 {
				fn = args[0]
			}
			return rf.render(fn, *flagOut, *flagFormat)
		},
	}

	if err := app.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

// serve the report of the CSV file as /report.html, /report.xlsx and /report.pdf.
//
// The file is re-read on each request.
func serve(ctx context.Context, addr string, rf *reportFlags, fn string) error {
	mux := http.NewServeMux()
	for _, e := range rf.exporters() {
		mux.HandleFunc("GET /report"+e.Ext(), func(w http.ResponseWriter, r *http.Request) {
			rep, err := rf.load(fn)
			if err == nil {
				err = reporttable.Respond(w, e, rep)
			}
			if err != nil {
				logger.Error("respond", "path", r.URL.Path, "error", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		})
	}
	srv := http.Server{
		Addr:              addr,
		Handler:           gzhttp.GzipHandler(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutCtx)
	}()
	logger.Info("listening", "addr", addr, "file", fn)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
