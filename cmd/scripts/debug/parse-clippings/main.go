package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"
	"github.com/tsundokuhq/tsundoku/pkg/highlights"
)

func main() {
	log := logger.New()

	var opts struct {
		HTML bool `long:"html" description:"Force the HTML extractor instead of sniffing the format"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if len(args) != 1 {
		fmt.Println("go run ./cmd/scripts/debug/parse-clippings <path/to/clippings>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Err(err).Fatal("read file error")
	}
	text := string(data)

	var extract *highlights.Extract
	if opts.HTML || highlights.LooksLikeHTML(text) {
		extract = highlights.ExtractFromHTML(text)
	} else {
		extract = highlights.ExtractFromMarkdown(text)
	}

	fmt.Printf("Title: %s\nHighlights: %d\n", extract.Title, len(extract.Highlights))
	for _, h := range extract.Highlights {
		fmt.Printf("  - %s\n", h)
	}
}
