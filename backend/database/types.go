package database

import "time"

type Image struct {
	Id           int64     `db:"id,omitempty"`
	FileName     string    `db:"file_name"`
	Directory    string    `db:"directory"`
	ByteSize     int64     `db:"byte_size"`
	ModifiedTime time.Time `db:"modified_time"`
}
