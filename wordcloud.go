// builds a word cloud out of the nouns of a Korean text file
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"goWordCloud/analysislib"
	"goWordCloud/cloudlib"
	"goWordCloud/configlib"
	"goWordCloud/exportlib"
	"goWordCloud/freqlib"
	"goWordCloud/iolib"
	"goWordCloud/morphlib"
	"goWordCloud/stringlib"
)

const defaultInput = "wordcloud.txt"

/***************************************************************************************************************
****************************************************************************************************************
* CONFIG *******************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

type options struct {
	configName string
	input      string
	out        string
	table      string
	debug      bool
}

// flags are bound into v so they override the config file
func parseFlags(args []string, v *viper.Viper, stderr io.Writer) (*options, error) {
	fs := pflag.NewFlagSet("wordcloud", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: wordcloud [options] [file]\nword cloud of the nouns of a Korean text file (default %s)\n\noptions:\n", defaultInput)
		fs.PrintDefaults()
	}

	o := &options{}
	fs.StringVar(&o.configName, "config", "wordcloud", "config file name without extension, searched in the working directory")
	fs.StringVarP(&o.out, "out", "o", "wordcloud.png", "rendered cloud, .png or .jpg")
	fs.StringVarP(&o.table, "table", "t", "", "frequency table export, .csv or .xlsx")
	fs.BoolVar(&o.debug, "debug", false, "dump the loaded config")
	fs.Int("min-length", 2, "minimum word length in characters (1-5)")
	fs.Int("max-words", 100, "maximum distinct words drawn (50-500)")
	fs.String("palette", "Set3", "color palette: "+strings.Join(cloudlib.Palettes(), ", "))
	fs.String("font", "malgun.ttf", "TTF font with Hangul glyphs")
	fs.String("analyzer", morphlib.KagomeName, "noun extractor: kagome or prose")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	for key, flag := range map[string]string{
		"minLength": "min-length",
		"maxWords":  "max-words",
		"palette":   "palette",
		"fontPath":  "font",
		"analyzer":  "analyzer",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	o.input = defaultInput
	if fs.NArg() > 0 {
		o.input = fs.Arg(0)
	}

	return o, nil
}

/***************************************************************************************************************
****************************************************************************************************************
* OUTPUT *******************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

func printTop(w io.Writer, entries []freqlib.Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Word", "Count"})
	for _, e := range entries {
		table.Append([]string{strconv.Itoa(e.Rank), e.Word, strconv.Itoa(e.Count)})
	}
	table.Render()
}

func reportReadError(w io.Writer, err error) {
	var re *iolib.ReadError
	if errors.As(err, &re) && re.NotFound() {
		fmt.Fprintf(w, "File %s not found. Check that it exists in the current folder.\n", re.Path)
		return
	}
	fmt.Fprintf(w, "Error reading the text file: %v\n", err)
}

/***************************************************************************************************************
****************************************************************************************************************
* MAIN *********************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	v := viper.New()
	o, err := parseFlags(args, v, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	fmt.Fprintln(stdout, "* Text file word cloud generator")
	fmt.Fprintln(stdout, strings.Repeat("=", 50))

	cfg, err := configlib.Load(v, o.configName)
	if err != nil {
		fmt.Fprintf(stdout, "Config error: %v\n", err)
		return 1
	}
	if o.debug {
		goDebug.Print("config", cfg)
	}

	text, err := iolib.ReadText(o.input)
	if err != nil {
		reportReadError(stdout, err)
		return 1
	}
	fmt.Fprintf(stdout, "* Read %d characters from %s\n", stringlib.RuneLen(text), o.input)
	if stringlib.MostlyNonKorean(text) {
		fmt.Fprintf(stdout, "Warning: text is mostly non-Korean (%.0f%% Hangul), few nouns may be found\n", 100*stringlib.HangulRatio(text))
	}

	analyzer, err := morphlib.New(cfg.Analyzer)
	if err != nil {
		fmt.Fprintf(stdout, "Config error: %v\n", err)
		return 1
	}
	pipeline := analysislib.New(analyzer, cloudlib.Renderer{},
		analysislib.WithLogger(logger),
		analysislib.WithCacheTTL(cfg.CacheTTL))

	fmt.Fprintln(stdout, "* Analyzing text ...")
	res, err := pipeline.Generate(text, analysislib.Params{MinLength: cfg.MinLength, Cloud: cfg.CloudOptions()})
	switch {
	case errors.Is(err, analysislib.ErrNoAnalyzableWords):
		fmt.Fprintln(stdout, "No analyzable words left after filtering.")
		return 1
	case err != nil:
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "* Extracted words: %d\n\n", len(res.Words))
	fmt.Fprintf(stdout, "Top %d word frequencies\n", cfg.TopN)
	printTop(stdout, res.Table.Top(cfg.TopN))

	if err := exportlib.SaveImage(o.out, res.Cloud); err != nil {
		fmt.Fprintf(stdout, "Saving the word cloud failed: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "* Word cloud saved to %s\n", o.out)

	if o.table != "" {
		if err := exportlib.SaveTable(o.table, res.Table.Ranked()); err != nil {
			fmt.Fprintf(stdout, "Saving the frequency table failed: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "* Frequency table saved to %s\n", o.table)
	}

	fmt.Fprintln(stdout, "\n***** Done!!!")

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
