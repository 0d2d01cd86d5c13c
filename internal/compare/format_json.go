package compare

import (
	"encoding/json"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// jsonDocument adds the headline answer to the serialized comparison set
type jsonDocument struct {
	*ComparisonSet
	Best string `json:"best,omitempty"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	doc := jsonDocument{ComparisonSet: compSet, Best: bestScenario(compSet)}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// bestScenario names the scenario with the highest maturity value, base included
func bestScenario(compSet *ComparisonSet) string {
	if compSet.BaseResult == nil {
		return ""
	}
	best := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].MaturityValue.GreaterThan(best.MaturityValue) {
			best = &compSet.AlternativeResults[i]
		}
	}
	return best.ScenarioName
}
