package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meenmo/ratetree/bond"
	"github.com/meenmo/ratetree/shortrate"
)

type spotInput struct {
	TaskID      string  `json:"task_id,omitempty"`
	InitialRate float64 `json:"initial_rate"`
	UpMove      float64 `json:"up_move"`
	DownMove    float64 `json:"down_move"`
	Horizon     int     `json:"horizon"`
	Notional    float64 `json:"notional,omitempty"`
}

type spotOutput struct {
	TaskID    string  `json:"task_id,omitempty"`
	Horizon   int     `json:"horizon"`
	Notional  float64 `json:"notional"`
	BondPrice float64 `json:"bond_price"`
	SpotRate  float64 `json:"spot_rate"`
	Error     string  `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: spotrate -input <path>")
		fmt.Fprintln(os.Stderr, "Price a zero-coupon bond on a binomial short-rate lattice and annualize the spot rate.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: spotrate -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]spotOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, spotOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in spotInput) (*spotOutput, error) {
	res, err := bond.PriceZeroCoupon(bond.ZeroCouponInput{
		Model: shortrate.Model{
			Initial:  in.InitialRate,
			UpMove:   in.UpMove,
			DownMove: in.DownMove,
		},
		Horizon:  in.Horizon,
		Notional: in.Notional,
	})
	if err != nil {
		return nil, err
	}

	return &spotOutput{
		TaskID:    in.TaskID,
		Horizon:   res.Horizon,
		Notional:  res.Notional,
		BondPrice: res.Price,
		SpotRate:  res.SpotRate,
	}, nil
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]spotInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []spotInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input spotInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []spotInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(spotOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
