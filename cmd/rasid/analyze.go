package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nalkhodair/rasid/internal/cli"
	"github.com/nalkhodair/rasid/internal/config"
	"github.com/nalkhodair/rasid/internal/engine"
	"github.com/nalkhodair/rasid/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errCouldNotProcess signals the failure outcome after the failure line has
// already been printed; main suppresses its message and only sets the exit
// code.
var errCouldNotProcess = errors.New("could not process transaction")

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze a single bank SMS notification",
		Long: `Analyze one Arabic bank SMS purchase notification: extract the
transaction fields, classify the vendor into a spending category, and save
the result as a JSON analysis file.

The SMS text is taken from the argument, from --file, or read interactively
from standard input. Literal \n sequences in the text are treated as line
breaks.

Examples:
  rasid analyze                                # prompt for the SMS text
  rasid analyze "$(cat sms.txt)"               # analyze text from a file
  rasid analyze --file sms.txt --dry-run       # classify without saving`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("file", "f", "", "read the SMS text from a file")
	cmd.Flags().StringP("output", "o", "", "path of the JSON analysis file (default: "+storage.DefaultPath+")")
	cmd.Flags().Bool("dry-run", false, "classify without writing the analysis file")

	_ = viper.BindPFlag("analyze.file", cmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("analyze.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("analyze.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := readSMSText(args)
	if err != nil {
		return fmt.Errorf("failed to read SMS text: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	classifier, err := createClassifier(cfg)
	if err != nil {
		return err
	}

	var store engine.Store
	if !viper.GetBool("analyze.dry_run") {
		outputPath := viper.GetString("analyze.output")
		if outputPath == "" {
			outputPath = cfg.OutputPath
		}
		store = storage.NewJSONStore(config.ExpandPath(outputPath))
	}

	eng := engine.New(classifier, store, slog.Default())

	txn, err := eng.Process(ctx, text)
	if err != nil {
		slog.Error("processing failed", "error", err)
	}
	if err != nil || txn == nil {
		fmt.Println(cli.ErrorStyle.Render("Could not process transaction"))
		return errCouldNotProcess
	}

	fmt.Println(cli.SuccessStyle.Render("Transaction processed successfully"))
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%s — SAR %.2f — %s — %s %s",
		txn.Vendor, txn.Amount, txn.Category, txn.Date, txn.Time)))
	return nil
}

// readSMSText resolves the SMS body from the argument, the --file flag, or
// one line of interactive input, in that order of precedence.
func readSMSText(args []string) (string, error) {
	var text string
	switch {
	case len(args) > 0:
		text = args[0]
	case viper.GetString("analyze.file") != "":
		data, err := os.ReadFile(viper.GetString("analyze.file"))
		if err != nil {
			return "", err
		}
		text = string(data)
	default:
		fmt.Print("Enter the transaction SMS text: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		text = strings.TrimRight(line, "\r\n")
	}

	// SMS bodies pasted on one line carry literal \n escapes.
	return strings.ReplaceAll(text, `\n`, "\n"), nil
}
