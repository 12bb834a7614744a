package nexus

import "time"

// ModData is a mod as returned by the NexusMods API.
type ModData struct {
	ModID                int       `graphql:"modId"`
	Name                 string    `graphql:"name"`
	Summary              string    `graphql:"summary"`
	Version              string    `graphql:"version"`
	Author               string    `graphql:"author"`
	PictureURL           string    `graphql:"pictureUrl"`
	ContainsAdultContent bool      `graphql:"adultContent"`
	EndorsementCount     int       `graphql:"endorsements"`
	UpdatedTime          time.Time `graphql:"updatedAt"`
}

// FileData is a downloadable file belonging to a mod.
type FileData struct {
	FileID       int       `graphql:"fileId"`
	Name         string    `graphql:"name"`
	FileName     string    `graphql:"uri"`
	Version      string    `graphql:"version"`
	CategoryName string    `graphql:"category"`
	IsPrimary    bool      `graphql:"primary"`
	Size         int64     `graphql:"sizeInBytes"`
	UploadedTime time.Time `graphql:"date"`
}
