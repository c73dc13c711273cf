package tmdb

// Movie is a single title as returned by the trending and search endpoints.
// Region is not part of the TMDB payload; the client tags each record with
// the region code the query was made for.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Runtime          int     `json:"runtime,omitempty"`
	Genres           []Genre `json:"genres,omitempty"`
	Region           string  `json:"region,omitempty"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	OriginalTitle    string  `json:"original_title,omitempty"`
}

// Genre is a TMDB genre entry.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCompany is a company credited on a movie.
type ProductionCompany struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path,omitempty"`
	OriginCountry string `json:"origin_country,omitempty"`
}

// ProductionCountry is a country a movie was produced in.
type ProductionCountry struct {
	ISO3166_1 string `json:"iso_3166_1"`
	Name      string `json:"name"`
}

// SpokenLanguage is a language spoken in a movie.
type SpokenLanguage struct {
	ISO639_1    string `json:"iso_639_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name,omitempty"`
}

// RegionalRelease is the primary release entry for one region, resolved
// against the region registry.
type RegionalRelease struct {
	RegionCode    string `json:"region_code"`
	RegionName    string `json:"region_name"`
	ReleaseDate   string `json:"release_date"`
	Certification string `json:"certification,omitempty"`
	LocalTitle    string `json:"local_title,omitempty"`
}

// RegionalBoxOffice is a per-region revenue entry.
type RegionalBoxOffice struct {
	RegionCode string `json:"region_code"`
	Currency   string `json:"currency"`
	Revenue    int64  `json:"revenue"`
}

// Video is a single trailer/clip entry.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// VideoList wraps the videos sub-resource.
type VideoList struct {
	Results []Video `json:"results"`
}

// CastMember is a credited actor.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// CrewMember is a credited crew entry.
type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path,omitempty"`
}

// Credits wraps the credits sub-resource.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Backdrop is a single backdrop image entry.
type Backdrop struct {
	FilePath string `json:"file_path"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// ImageList wraps the images sub-resource.
type ImageList struct {
	Backdrops []Backdrop `json:"backdrops"`
}

// MovieDetails extends Movie with the detail-endpoint fields and its
// appended sub-resources. Budget and Revenue are integer currency units
// where 0 means unknown.
type MovieDetails struct {
	Movie

	Tagline             string              `json:"tagline"`
	Status              string              `json:"status"`
	Budget              int64               `json:"budget"`
	Revenue             int64               `json:"revenue"`
	ProductionCompanies []ProductionCompany `json:"production_companies,omitempty"`
	ProductionCountries []ProductionCountry `json:"production_countries,omitempty"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages,omitempty"`
	RegionalReleases    []RegionalRelease   `json:"regional_releases,omitempty"`
	RegionalBoxOffice   []RegionalBoxOffice `json:"regional_box_office,omitempty"`
	Videos              VideoList           `json:"videos"`
	Credits             Credits             `json:"credits"`
	Images              ImageList           `json:"images"`
}
