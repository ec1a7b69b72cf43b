package tokenize

// Sink interns tokens: equal tokens get equal ids, so token sequences from
// several inputs can be compared as []int.
type Sink struct {
	Tokens []string
	index  map[string]int
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{index: make(map[string]int)}
}

// Add returns the id of token, assigning the next free id on first sight.
func (s *Sink) Add(token string) int {
	if id, ok := s.index[token]; ok {
		return id
	}
	id := len(s.Tokens)
	s.index[token] = id
	s.Tokens = append(s.Tokens, token)
	return id
}

// Intern maps every token to its id.
func (s *Sink) Intern(tokens []string) []int {
	ids := make([]int, len(tokens))
	for i, t := range tokens {
		ids[i] = s.Add(t)
	}
	return ids
}

// Token returns the token behind id.
func (s *Sink) Token(id int) string { return s.Tokens[id] }
