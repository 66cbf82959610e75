package prayerstore

import "errors"

var (
	ErrEmptyFolderName             = errors.New("prayerstore: folder name is empty")
	ErrInvalidPrayer               = errors.New("prayerstore: invalid prayer")
	ErrInvalidLanguage             = errors.New("prayerstore: language must be en or es")
	ErrInvalidNotificationSettings = errors.New("prayerstore: invalid notification settings")
)
