// Command cbowdata builds and inspects CBOW training corpora.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/cbowdata"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cbowdata",
		Usage: "build and inspect CBOW training corpora",
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "ingest text files into a corpus",
				ArgsUsage: "<file> [file ...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: "corpus.bin",
						Usage: "output corpus file",
					},
					&cli.IntFlag{
						Name:  "window",
						Value: 2,
						Usage: "context window radius",
					},
					&cli.IntFlag{
						Name:  "min-count",
						Usage: "drop words with fewer occurrences",
					},
				},
				Action: buildCorpus,
			},
			{
				Name:      "stats",
				Usage:     "summarize a corpus",
				ArgsUsage: "<corpus>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Value: 10,
						Usage: "number of most common words to list",
					},
				},
				Action: corpusStats,
			},
			{
				Name:      "sample",
				Usage:     "print context windows from a corpus",
				ArgsUsage: "<corpus>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "n",
						Value: 10,
						Usage: "number of samples to print",
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "starting offset into the sample space",
					},
				},
				Action: sampleCorpus,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cbowdata:", err)
		os.Exit(1)
	}
}

func buildCorpus(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("build: no input files", 1)
	}

	var lines []string
	for _, path := range c.Args().Slice() {
		fileLines, err := readLines(path)
		if err != nil {
			return err
		}
		lines = append(lines, fileLines...)
	}

	builder := cbowdata.NewBuilder(c.Int("window"))

	uiprogress.Start()
	bar := uiprogress.AddBar(len(lines))
	bar.AppendCompleted()
	bar.PrependElapsed()
	for _, line := range lines {
		builder.Add(line)
		bar.Incr()
	}
	uiprogress.Stop()

	corpus := builder.Build()
	if min := c.Int("min-count"); min > 0 {
		corpus = corpus.Prune(min)
	}

	data, err := serializer.SerializeAny(corpus)
	if err != nil {
		return essentials.AddCtx("build corpus", err)
	}
	if err := os.WriteFile(c.String("out"), data, 0644); err != nil {
		return err
	}

	fmt.Printf("%d sentences, %d words, %d samples -> %s\n",
		len(corpus.Sentences), corpus.Vocab.Len(), corpus.NumSamples(),
		c.String("out"))
	return nil
}

func corpusStats(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("stats: expected one corpus file", 1)
	}
	corpus, err := loadCorpus(c.Args().First())
	if err != nil {
		return err
	}

	fmt.Println("window:   ", corpus.Window)
	fmt.Println("sentences:", len(corpus.Sentences))
	fmt.Println("words:    ", corpus.Vocab.Len())
	fmt.Println("samples:  ", corpus.NumSamples())
	for _, word := range corpus.Vocab.MostCommon(c.Int("top")) {
		id, _ := corpus.Vocab.ID(word)
		fmt.Printf("%8d  %s\n", corpus.Vocab.Count(id), word)
	}
	return nil
}

func sampleCorpus(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("sample: expected one corpus file", 1)
	}
	corpus, err := loadCorpus(c.Args().First())
	if err != nil {
		return err
	}
	if corpus.NumSamples() == 0 {
		return cli.Exit("sample: corpus has no samples", 1)
	}

	sampler := cbowdata.NewSampler(corpus, anyvec32.CurrentCreator())
	sampler.SetOffset(c.Int("offset"))
	for i := 0; i < c.Int("n") && !sampler.Done(); i++ {
		window, target := sampler.Next()
		words := make([]string, 0, window.Len())
		for _, x := range window.Data().([]float32) {
			words = append(words, corpus.Vocab.Word(int(x)))
		}
		fmt.Printf("%v -> %s\n", words, corpus.Vocab.Word(target))
	}
	return nil
}

func loadCorpus(path string) (*cbowdata.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var corpus *cbowdata.Corpus
	if err := serializer.DeserializeAny(data, &corpus); err != nil {
		return nil, essentials.AddCtx("load corpus", err)
	}
	return corpus, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, essentials.AddCtx("read "+path, err)
	}
	return lines, nil
}
