package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip is the saved document: the itinerary payload plus the collaboration
// chat that produced it.
type Trip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username    string             `bson:"username" json:"username"`
	Title       string             `bson:"title" json:"title"`
	Itinerary   Itinerary          `bson:"itinerary" json:"itinerary"`
	ChatHistory []ChatMessage      `bson:"chat_history" json:"chat_history"`
}

type ChatMessage struct {
	Sender string `bson:"sender" json:"sender"`
	Text   string `bson:"text" json:"text"`
}

// Itinerary is the model-generated payload, enriched in place afterwards.
type Itinerary struct {
	TripDetails TripDetails `bson:"trip_details" json:"trip_details"`
	Days        []Day       `bson:"days" json:"days"`
}

type TripDetails struct {
	DestinationCity    string `bson:"destination_city" json:"destination_city"`
	DestinationCountry string `bson:"destination_country" json:"destination_country"`
	TripDurationDays   int    `bson:"trip_duration_days" json:"trip_duration_days"`
	Title              string `bson:"title" json:"title"`
}

type Day struct {
	DayNumber  int        `bson:"day_number" json:"day_number"`
	Theme      string     `bson:"theme" json:"theme"`
	Activities []Activity `bson:"activities" json:"activities"`
}

// Activity carries the generation-time fields; everything after
// LocationQuery is optional and only present when the matching external
// lookup succeeded during enrichment.
type Activity struct {
	ActivityID    string `bson:"activity_id" json:"activity_id"`
	TimeOfDay     string `bson:"time_of_day" json:"time_of_day"`
	ActivityName  string `bson:"activity_name" json:"activity_name"`
	Description   string `bson:"description" json:"description"`
	LocationQuery string `bson:"location_query_for_api" json:"location_query_for_api"`

	Address       string   `bson:"address,omitempty" json:"address,omitempty"`
	GoogleRating  float64  `bson:"google_rating,omitempty" json:"google_rating,omitempty"`
	Website       string   `bson:"website,omitempty" json:"website,omitempty"`
	PhoneNumber   string   `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	OpeningHours  []string `bson:"opening_hours,omitempty" json:"opening_hours,omitempty"`
	GoogleMapsURL string   `bson:"google_maps_url,omitempty" json:"google_maps_url,omitempty"`
	TopReview     *Review  `bson:"top_review,omitempty" json:"top_review,omitempty"`
	ImageURL      string   `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Weather       *Weather `bson:"weather,omitempty" json:"weather,omitempty"`
}

type Review struct {
	Author string `bson:"author" json:"author"`
	Text   string `bson:"text" json:"text"`
}

type Weather struct {
	Status      string  `bson:"status" json:"status"`
	Temperature float64 `bson:"temperature" json:"temperature"`
}

// TripSummary is the projection returned by the list route.
type TripSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
