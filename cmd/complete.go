package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors overrides the prediction of flags whose values are known.
var flagPredictors = map[string]complete.Predictor{
	"csv":  predict.Files("*"),
	"algo": predict.Set(algorithmNames()),
}

// Completion describes the commands and flags for shell completion. top is
// the flag set holding the global flags.
func (a *App) Completion(top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagsOf(top),
	}
	for _, c := range a.Commands() {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagsOf(f)}
	}
	root.Sub["menu"].Args = predict.Files("*")
	root.Sub["help"] = &complete.Command{Args: predict.Set(commandNames(a))}
	return root
}

func flagsOf(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

func commandNames(a *App) []string {
	var names []string
	for _, c := range a.Commands() {
		names = append(names, c.Name())
	}
	return names
}
