package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Customer struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"customername" bson:"customername"`
	Phone   string             `json:"customerphone" bson:"customerphone"`
	Address string             `json:"customeraddress,omitempty" bson:"customeraddress,omitempty"`
}

// CustomerInput is the request body for create/update
type CustomerInput struct {
	Name    string `json:"customername"`
	Phone   string `json:"customerphone"`
	Address string `json:"customeraddress"`
}
