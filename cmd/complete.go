package cmd

import (
	"maps"

	"github.com/etnz/screener/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the scr command.
//
// Calling Complete on it is a no-op unless the COMP_LINE variable is set.
func Completion() *complete.Command {
	input := predict.Files("*.csv")
	formats := predict.Set{"csv", "json"}
	criteria := map[string]complete.Predictor{
		"m": predict.Something,
		"r": predict.Something,
	}
	with := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		m := make(map[string]complete.Predictor, len(criteria)+len(flags))
		maps.Copy(m, criteria)
		maps.Copy(m, flags)
		return m
	}

	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {
				Flags: with(map[string]complete.Predictor{
					"o": predict.Files("*"),
					"f": formats,
					"s": predict.Nothing,
					"t": predict.Nothing,
					"i": predict.Nothing,
				}),
				Args: input,
			},
			"stats": {Args: input},
			"export": {
				Flags: with(map[string]complete.Predictor{
					"o": predict.Files("*"),
					"f": formats,
				}),
				Args: input,
			},
			"query": {
				Flags: map[string]complete.Predictor{"ranked": predict.Nothing},
				Args:  input,
			},
			"shell":    {Flags: with(nil), Args: input},
			"topic":    {Args: predict.Set(append([]string{"*"}, topics...))},
			"help":     {},
			"commands": {},
			"flags":    {},
		},
		Flags: map[string]complete.Predictor{
			"v":        predict.Nothing,
			"env-file": predict.Files("*"),
		},
	}
}
