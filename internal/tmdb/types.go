package tmdb

// MediaType is the category tag TMDB attaches to every multi-search hit.
type MediaType string

const (
	MediaMovie  MediaType = "movie"
	MediaTV     MediaType = "tv"
	MediaPerson MediaType = "person"
)

// SearchResult is a single hit from /search/multi. Movies carry Title and
// OriginalTitle, TV shows and people carry Name and OriginalName.
type SearchResult struct {
	ID            int        `json:"id"`
	MediaType     MediaType  `json:"media_type"`
	Title         string     `json:"title,omitempty"`
	OriginalTitle string     `json:"original_title,omitempty"`
	Name          string     `json:"name,omitempty"`
	OriginalName  string     `json:"original_name,omitempty"`
	Overview      string     `json:"overview,omitempty"`
	PosterPath    string     `json:"poster_path,omitempty"`
	ProfilePath   string     `json:"profile_path,omitempty"`
	KnownFor      []KnownFor `json:"known_for,omitempty"`
}

// DisplayTitle returns the name TMDB would show for the hit.
func (r SearchResult) DisplayTitle() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

// KnownFor is a movie or show a person is credited on, embedded in person hits.
type KnownFor struct {
	ID        int       `json:"id"`
	MediaType MediaType `json:"media_type"`
	Title     string    `json:"title,omitempty"`
	Name      string    `json:"name,omitempty"`
}

// Label prefers the name over the title, matching how TMDB labels known-for entries.
func (k KnownFor) Label() string {
	if k.Name != "" {
		return k.Name
	}
	return k.Title
}

type multiSearchResponse struct {
	Page         int            `json:"page"`
	Results      []SearchResult `json:"results"`
	TotalResults int            `json:"total_results"`
}

// Country is a production country as returned by detail endpoints.
type Country struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

// Movie holds /movie/{id} with credits appended.
type Movie struct {
	ID                  int       `json:"id"`
	Title               string    `json:"title"`
	OriginalTitle       string    `json:"original_title"`
	ReleaseDate         string    `json:"release_date"`
	Runtime             int       `json:"runtime"`
	IMDbID              string    `json:"imdb_id"`
	ProductionCountries []Country `json:"production_countries"`
	Credits             *Credits  `json:"credits,omitempty"`
}

// Credits is the append_to_response=credits payload.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

type CastMember struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

type CrewMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// TV holds /tv/{id}.
type TV struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	OriginalName        string    `json:"original_name"`
	FirstAirDate        string    `json:"first_air_date"`
	LastAirDate         string    `json:"last_air_date"`
	NumberOfSeasons     int       `json:"number_of_seasons"`
	NumberOfEpisodes    int       `json:"number_of_episodes"`
	CreatedBy           []Creator `json:"created_by"`
	ProductionCountries []Country `json:"production_countries"`
}

type Creator struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Person holds /person/{id}.
type Person struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Birthday     string `json:"birthday"`
	Deathday     string `json:"deathday"`
	PlaceOfBirth string `json:"place_of_birth"`
	IMDbID       string `json:"imdb_id"`
}
