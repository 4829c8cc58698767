package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofrs/uuid/v5"

	"github.com/ivanmr/edmsup/internal/httpclients/edms"
	"github.com/ivanmr/edmsup/internal/service"
	"github.com/ivanmr/edmsup/pkg/config"
	"github.com/ivanmr/edmsup/pkg/logger"
)

func main() {
	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_ = logger.New()

	client := edms.NewClient(cfg.EDMSBaseURL, cfg.EDMSUsername, cfg.EDMSPassword, cfg.EDMSHTTPTimeout)
	s := service.New(client)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	ctx = logger.SetRequestID(ctx, uuid.Must(uuid.NewV4()).String())

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "upload":
		runUpload(ctx, s, os.Args[2:])
	case "download":
		runDownload(ctx, s, os.Args[2:])
	case "fetch":
		runFetch(ctx, s, os.Args[2:])
	default:
		usage()
	}
}

func runUpload(ctx context.Context, s *service.Service, args []string) {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	filePath := fs.String("file", "", "path of the file to upload")
	label := fs.String("label", "", "document label (defaults to the file name)")
	_ = fs.Parse(args)

	uploaded, err := s.UploadDocument(logger.SetDocument(ctx, *label), *filePath, *label)
	panicOnErr("upload document", err)

	fmt.Printf("document: %s\nfile id: %s\nfile name: %s\nmime type: %s\ndownload url: %s\n",
		uploaded.DocumentURL, uploaded.FileID, uploaded.FileName, uploaded.MimeType, uploaded.DownloadURL)
}

func runDownload(ctx context.Context, s *service.Service, args []string) {
	fs := flag.NewFlagSet("download", flag.ExitOnError)
	fileURL := fs.String("url", "", "file url to download")
	out := fs.String("out", "", "destination path (must not exist)")
	_ = fs.Parse(args)

	err := s.DownloadDocument(ctx, *fileURL, *out)
	panicOnErr("download document", err)
}

func runFetch(ctx context.Context, s *service.Service, args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	fileURL := fs.String("url", "", "file url to fetch")
	_ = fs.Parse(args)

	doc, err := s.FetchDocument(ctx, *fileURL)
	panicOnErr("fetch document", err)

	_, err = os.Stdout.Write(doc.Data)
	panicOnErr("write stdout", err)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: edmsup <upload|download|fetch> [flags]")
	os.Exit(2)
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
