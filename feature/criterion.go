package feature

import "fmt"

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample satisfies the feature criterion.

Its Feature method returns the feature on which the criterion is applied.
*/
type Criterion interface {
	Feature() Feature
	SatisfiedBy(sample Sample) bool
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value token corresponding to the feature
passed as parameter.
*/
type Sample interface {
	ValueFor(Feature) string
}

/*
DiscreteCriterion represents a constraint on a discrete feature, a
value it must take.

Its Value method returns the value to which the feature is constrained.
*/
type DiscreteCriterion interface {
	Criterion
	Value() string
}

/*
UndefinedCriterion represents the constraint of a feature value being
unknown for a sample.
*/
type UndefinedCriterion interface {
	Criterion
	IsUndefinedCriterion() bool
}

type discreteCriterion struct {
	feature Feature
	value   string
}

type undefinedCriterion struct {
	feature        Feature
	undefinedValue string
}

/*
NewDiscreteCriterion takes a Feature and a value string and returns a
DiscreteCriterion satisfied by samples holding exactly that value for the
feature.
*/
func NewDiscreteCriterion(f Feature, value string) DiscreteCriterion {
	return &discreteCriterion{f, value}
}

/*
NewUndefinedCriterion takes a Feature and the token used to mark undefined
values and returns a Criterion satisfied by samples whose value for the
feature is that token.
*/
func NewUndefinedCriterion(f Feature, undefinedValue string) UndefinedCriterion {
	return &undefinedCriterion{f, undefinedValue}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (dfc *discreteCriterion) Feature() Feature {
	return dfc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns true if its value for
the criterion feature equals the value on the criterion.
*/
func (dfc *discreteCriterion) SatisfiedBy(sample Sample) bool {
	return sample.ValueFor(dfc.feature) == dfc.value
}

func (dfc *discreteCriterion) Value() string {
	return dfc.value
}

func (dfc *discreteCriterion) String() string {
	return fmt.Sprintf("%s is %s", dfc.feature.Name(), dfc.value)
}

func (u *undefinedCriterion) Feature() Feature {
	return u.feature
}

func (u *undefinedCriterion) SatisfiedBy(sample Sample) bool {
	return sample.ValueFor(u.feature) == u.undefinedValue
}

func (u *undefinedCriterion) IsUndefinedCriterion() bool {
	return true
}

func (u *undefinedCriterion) String() string {
	return fmt.Sprintf("%s not defined", u.feature.Name())
}
