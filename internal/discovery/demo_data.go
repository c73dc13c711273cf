package discovery

import (
	"strings"

	"github.com/jkarvonen/cinescope/internal/omdb"
	"github.com/jkarvonen/cinescope/internal/region"
	"github.com/jkarvonen/cinescope/internal/tmdb"
)

// demoBaseMovies are served from every region when live providers are
// unavailable. Poster and backdrop paths are absolute so they render
// without an image base URL.
var demoBaseMovies = []tmdb.Movie{
	{
		ID:           1,
		Title:        "Inception",
		Overview:     "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets is offered a chance to regain his old life as payment for a task considered to be impossible: \"inception\", the implantation of another person's idea into a target's subconscious.",
		PosterPath:   "https://image.tmdb.org/t/p/w500/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
		BackdropPath: "https://image.tmdb.org/t/p/original/s3TBrRGB1iav7gFOCNx3H31MoES.jpg",
		ReleaseDate:  "2010-07-16",
		VoteAverage:  8.4,
		VoteCount:    31345,
	},
	{
		ID:           2,
		Title:        "The Dark Knight",
		Overview:     "Batman raises the stakes in his war on crime. With the help of Lt. Jim Gordon and District Attorney Harvey Dent, Batman sets out to dismantle the remaining criminal organizations that plague the streets. The partnership proves to be effective, but they soon find themselves prey to a reign of chaos unleashed by a rising criminal mastermind known to the terrified citizens of Gotham as the Joker.",
		PosterPath:   "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		BackdropPath: "https://image.tmdb.org/t/p/original/hkBaDkMWbLaf8B1lsWsKX7Ew3Xq.jpg",
		ReleaseDate:  "2008-07-18",
		VoteAverage:  8.5,
		VoteCount:    28975,
	},
	{
		ID:           3,
		Title:        "Interstellar",
		Overview:     "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer the vast distances involved in an interstellar voyage.",
		PosterPath:   "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
		BackdropPath: "https://image.tmdb.org/t/p/original/xJHokMbljvjADYdit5fK5VQsXEG.jpg",
		ReleaseDate:  "2014-11-05",
		VoteAverage:  8.3,
		VoteCount:    29530,
	},
}

// demoRegionalMovies adds one locally popular title per selected region on
// top of the shared base set.
var demoRegionalMovies = map[string]tmdb.Movie{
	"IN": {
		ID:               101,
		Title:            "RRR",
		OriginalTitle:    "రౌద్రం రణం రుధిరం",
		OriginalLanguage: "te",
		Overview:         "A fearless revolutionary and an officer in the British force, who once shared a deep bond, decide to join forces and chart out an inspirational path of freedom against the despotic rulers.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/w7nHZaxHTrdD3CiLUjbRRrp3fMv.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/nWVGjRIAvGJ4gSjVCHthWnG0vFB.jpg",
		ReleaseDate:      "2022-03-24",
		VoteAverage:      7.8,
		VoteCount:        1234,
		Region:           "IN",
	},
	"KR": {
		ID:               102,
		Title:            "Parasite",
		OriginalTitle:    "기생충",
		OriginalLanguage: "ko",
		Overview:         "All unemployed, Ki-taek's family takes peculiar interest in the wealthy and glamorous Parks for their livelihood until they get entangled in an unexpected incident.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/TU9NIjwzjoKPwQHoHshkFcQUCG.jpg",
		ReleaseDate:      "2019-05-30",
		VoteAverage:      8.5,
		VoteCount:        14567,
		Region:           "KR",
	},
	"JP": {
		ID:               103,
		Title:            "Your Name",
		OriginalTitle:    "君の名は。",
		OriginalLanguage: "ja",
		Overview:         "High schoolers Mitsuha and Taki are complete strangers living separate lives. But one night, they suddenly switch places. Mitsuha wakes up in Taki's body, and he in hers.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/q719jXXEzOoYaps6babgKnONONX.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/mMtUybQ6hL24FXo0F3Z4F2Yu8tz.jpg",
		ReleaseDate:      "2016-08-26",
		VoteAverage:      8.4,
		VoteCount:        8765,
		Region:           "JP",
	},
	"FR": {
		ID:               104,
		Title:            "Amélie",
		OriginalTitle:    "Le Fabuleux Destin d'Amélie Poulain",
		OriginalLanguage: "fr",
		Overview:         "At a tiny Parisian café, the adorable yet painfully shy Amélie accidentally discovers a gift for helping others. Soon Amélie is spending her days as a matchmaker, guardian angel, and all-around do-gooder.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/f0uorE7K7ggHfr8r7pUTOHWkOlE.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/oIfcT9cVJkfVGbHzbSqhBtLFAIV.jpg",
		ReleaseDate:      "2001-04-25",
		VoteAverage:      7.9,
		VoteCount:        9876,
		Region:           "FR",
	},
	"CN": {
		ID:               105,
		Title:            "The Wandering Earth",
		OriginalTitle:    "流浪地球",
		OriginalLanguage: "zh",
		Overview:         "When the Sun begins to expand into a red giant and devour the Earth, mankind builds gigantic planet thrusters to move Earth out of its orbit and sail to a new star system.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/y6Fv8wnaNXjy7k42HhP3lcMCLUw.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/1schf4tYhLmeNhjyfyjVfk8HZHp.jpg",
		ReleaseDate:      "2019-02-05",
		VoteAverage:      7.3,
		VoteCount:        1256,
		Region:           "CN",
	},
	"ES": {
		ID:               106,
		Title:            "Pain and Glory",
		OriginalTitle:    "Dolor y Gloria",
		OriginalLanguage: "es",
		Overview:         "Salvador Mallo, a film director in the twilight of his career, remembers his life: his mother, his lovers, the actors he worked with. The urgent need to recount his past becomes the solution to forget it.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/2jRbsOG5yYHcdAqHIedhxvCFrXr.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/1n00NlOGbxIqXTMAlbFl5orLst8.jpg",
		ReleaseDate:      "2019-03-22",
		VoteAverage:      7.5,
		VoteCount:        1432,
		Region:           "ES",
	},
	"BR": {
		ID:               107,
		Title:            "City of God",
		OriginalTitle:    "Cidade de Deus",
		OriginalLanguage: "pt",
		Overview:         "In the poverty-stricken favelas of Rio de Janeiro in the 1970s, two young men choose different paths. Rocket is a budding photographer who documents the increasing drug-related violence of his neighborhood, while Li'l Zé is an ambitious drug dealer.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/k7eYdWvhYQyRQoU2TB2A2Xu2TfD.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/194dso1hBwQEgIU3fgS7mZHLLG1.jpg",
		ReleaseDate:      "2002-05-18",
		VoteAverage:      8.6,
		VoteCount:        5678,
		Region:           "BR",
	},
	"RU": {
		ID:               108,
		Title:            "Leviathan",
		OriginalTitle:    "Левиафан",
		OriginalLanguage: "ru",
		Overview:         "In a Russian coastal town, Kolya is forced to fight the corrupt mayor when he is told that his house will be demolished. He recruits a lawyer friend to help, but the man's arrival brings further misfortune for Kolya and his family.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/2IBphF7MRzBfPL1WzZXF4ZEnRtK.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/5YpSSmbMYGM4n1yM1NNFivUXCRR.jpg",
		ReleaseDate:      "2014-11-13",
		VoteAverage:      7.6,
		VoteCount:        987,
		Region:           "RU",
	},
	"MX": {
		ID:               109,
		Title:            "Roma",
		OriginalTitle:    "Roma",
		OriginalLanguage: "es",
		Overview:         "In 1970s Mexico City, two domestic workers help a mother of four while her husband is away for an extended period of time.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/dtIIyQyALk57ko5bjac7troHbEJ.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/icTtgm1rsd1jjUhJE1N41yQBtx2.jpg",
		ReleaseDate:      "2018-08-30",
		VoteAverage:      7.7,
		VoteCount:        3456,
		Region:           "MX",
	},
	"SE": {
		ID:               110,
		Title:            "The Square",
		OriginalTitle:    "The Square",
		OriginalLanguage: "sv",
		Overview:         "A prestigious Stockholm museum's chief art curator finds himself in times of both professional and personal crisis as he attempts to set up a controversial new exhibit.",
		PosterPath:       "https://image.tmdb.org/t/p/w500/g4KJjpSYAb9g8GSO1EAlW9nbVbB.jpg",
		BackdropPath:     "https://image.tmdb.org/t/p/original/pE8BQLTZpXyN9kBzAZbnCkdQa4W.jpg",
		ReleaseDate:      "2017-08-25",
		VoteAverage:      7.2,
		VoteCount:        1234,
		Region:           "SE",
	},
}

// demoTrending returns the shared base set tagged with the region, plus the
// region's local extra title when one exists.
func demoTrending(regionCode string) []tmdb.Movie {
	movies := make([]tmdb.Movie, 0, len(demoBaseMovies)+1)
	for _, movie := range demoBaseMovies {
		movie.Region = regionCode
		movies = append(movies, movie)
	}
	if extra, ok := demoRegionalMovies[regionCode]; ok {
		movies = append(movies, extra)
	}
	return movies
}

// demoSearch filters demo trending titles by case-insensitive substring
// match on the display or original title.
func demoSearch(query, regionCode string) []tmdb.Movie {
	needle := strings.ToLower(query)
	results := []tmdb.Movie{}
	for _, movie := range demoTrending(regionCode) {
		if strings.Contains(strings.ToLower(movie.Title), needle) ||
			strings.Contains(strings.ToLower(movie.OriginalTitle), needle) {
			results = append(results, movie)
		}
	}
	return results
}

// demoDetails resolves a demo movie by ID in the region's trending set,
// falling back to the first base title when the ID is unknown. Every demo
// record gets the same extended metadata, so detail views always have
// something to render.
func demoDetails(movieID int, regionCode string) *tmdb.MovieDetails {
	var movie tmdb.Movie
	found := false
	for _, candidate := range demoTrending(regionCode) {
		if candidate.ID == movieID {
			movie = candidate
			found = true
			break
		}
	}
	if !found {
		for _, candidate := range demoTrending(region.Default) {
			if candidate.ID == movieID {
				movie = candidate
				found = true
				break
			}
		}
	}
	if !found {
		movie = demoTrending(region.Default)[0]
	}
	movie.Region = regionCode
	movie.Runtime = 148
	movie.Genres = []tmdb.Genre{
		{ID: 28, Name: "Action"},
		{ID: 878, Name: "Science Fiction"},
		{ID: 12, Name: "Adventure"},
	}

	return &tmdb.MovieDetails{
		Movie:   movie,
		Tagline: "Your mind is the scene of the crime",
		Status:  "Released",
		Budget:  160000000,
		Revenue: 828322032,
		ProductionCompanies: []tmdb.ProductionCompany{
			{ID: 9996, Name: "Syncopy", LogoPath: "/5UQsZrfbfG2dYJbx8DxfoTr2Bvu.png"},
		},
		Videos: tmdb.VideoList{
			Results: []tmdb.Video{
				{Key: "YoHD9XEInc0", Site: "YouTube", Type: "Trailer", Name: "Official Trailer"},
			},
		},
		Credits: tmdb.Credits{
			Cast: []tmdb.CastMember{
				{ID: 6193, Name: "Leonardo DiCaprio", Character: "Dom Cobb", ProfilePath: "/wo2hJpn04vbtmh0B9utCFdsQhxM.jpg"},
				{ID: 24045, Name: "Joseph Gordon-Levitt", Character: "Arthur", ProfilePath: "/zSuXCR6xCKIL1TGP3PONhSwlDl.jpg"},
			},
			Crew: []tmdb.CrewMember{
				{ID: 525, Name: "Christopher Nolan", Job: "Director", ProfilePath: "/9NAZnTy82bolQ3QPAgjCpJaVTkZ.jpg"},
			},
		},
		Images: tmdb.ImageList{
			Backdrops: []tmdb.Backdrop{
				{FilePath: "/s3TBrRGB1iav7gFOCNx3H31MoES.jpg", Width: 1920, Height: 1080},
				{FilePath: "/8ZTVqvKDQ8emSGUEMjsS4yHAwrp.jpg", Width: 1920, Height: 1080},
			},
		},
	}
}

// demoRatings returns a fixed OMDb record so rating aggregation and the
// combined view stay populated offline.
func demoRatings() *omdb.OMDBResponse {
	return &omdb.OMDBResponse{
		Title:    "Inception",
		Year:     "2010",
		Rated:    "PG-13",
		Released: "16 Jul 2010",
		Runtime:  "148 min",
		Genre:    "Action, Adventure, Sci-Fi",
		Director: "Christopher Nolan",
		Writer:   "Christopher Nolan",
		Actors:   "Leonardo DiCaprio, Joseph Gordon-Levitt, Elliot Page",
		Plot:     "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O., but his tragic past may doom the project and his team to disaster.",
		Language: "English, Japanese, French",
		Country:  "USA, UK",
		Awards:   "Won 4 Oscars. 157 wins & 220 nominations total",
		Poster:   "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_SX300.jpg",
		Ratings: []omdb.Rating{
			{Source: "Internet Movie Database", Value: "8.8/10"},
			{Source: "Rotten Tomatoes", Value: "87%"},
			{Source: "Metacritic", Value: "74/100"},
		},
		Metascore:  "74",
		ImdbRating: "8.8",
		ImdbVotes:  "2,234,659",
		ImdbID:     "tt1375666",
		Type:       "movie",
		DVD:        "07 Dec 2010",
		BoxOffice:  "$292,587,330",
		Production: "Warner Bros. Pictures",
		Website:    "N/A",
		Response:   "True",
	}
}
