package entity

// League is a points-based rank title.
type League struct {
	Name      string `json:"name"`
	MinPoints int    `json:"minPoints"`
}

// Leagues in ascending point order.
var Leagues = []League{
	{Name: "Word Novice", MinPoints: 0},
	{Name: "Lexicon Explorer", MinPoints: 100},
	{Name: "Vocabulary Voyager", MinPoints: 500},
	{Name: "SAT Scholar", MinPoints: 1000},
	{Name: "Linguistic Master", MinPoints: 2000},
}

// LeagueFor returns the league a points total falls into and, when there is
// one, the next league to reach.
func LeagueFor(points int) (League, *League) {
	current := Leagues[0]
	for _, league := range Leagues {
		if points >= league.MinPoints {
			current = league
		}
	}
	for i := range Leagues {
		if Leagues[i].MinPoints > current.MinPoints {
			next := Leagues[i]
			return current, &next
		}
	}
	return current, nil
}
