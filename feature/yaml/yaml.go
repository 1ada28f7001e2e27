/*
Package yaml provides methods to parse feature.Feature specifications
also known as metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/viggieG/ID3-Random-Forest/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadFeatures takes a slice of bytes with a feature specification in YML and
returns a slice of features parsed from it or an error.
The YML is expected to be an object containing a features property. The value for this
should be an object with a property for each feature with its name and a list
of valid values. Features are returned in the order they are declared, which
becomes the attribute order of the datasets built with them.
*/
func ReadFeatures(md []byte) ([]feature.Feature, error) {
	order := struct {
		Features yaml.MapSlice
	}{}
	err := yaml.Unmarshal(md, &order)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	if order.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	// Decoding into strings keeps tokens such as yes or on as written
	// instead of resolving them to booleans.
	declared := struct {
		Features map[interface{}][]string
	}{}
	err = yaml.Unmarshal(md, &declared)
	if err != nil {
		return nil, fmt.Errorf("parsing yml features: %v", err)
	}
	features := []feature.Feature{}
	for _, item := range order.Features {
		fn := fmt.Sprintf("%v", item.Key)
		features = append(features, feature.NewDiscreteFeature(fn, declared.Features[item.Key]))
	}
	return features, nil
}

/*
ReadFeaturesFromFile takes a filepath string, reads its contents and uses
ReadFeatures to parse it and return a slice of parsed features or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadFeaturesFromFile(filepath string) ([]feature.Feature, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading features yml file %s: %v", filepath, err)
	}
	features, err := ReadFeatures(md)
	if err != nil {
		err = fmt.Errorf("parsing features yml file %s: %v", filepath, err)
	}
	return features, err
}
