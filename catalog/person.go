package catalog

// People is an ordered collection of persons.
type People []Person

// Person is a member of a family tree. Children holds the names of the
// person's children, if any.
type Person struct {
	Name     string
	IsMale   bool
	Children []string
}

// MotherChild pairs a mother's name with the name of one of her children.
type MotherChild struct {
	Mother string
	Child  string
}

// MothersWithChildren returns one MotherChild pair for every child of every
// non-male person, in input order.
func (p People) MothersWithChildren() []MotherChild {
	pairs := make([]MotherChild, 0)

	for _, person := range p {
		if person.IsMale {
			continue
		}

		for _, child := range person.Children {
			pairs = append(pairs, MotherChild{Mother: person.Name, Child: child})
		}
	}

	return pairs
}
