package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FullName                string             `json:"fullname" bson:"fullname"`
	Email                   string             `json:"email" bson:"email"`
	Password                string             `json:"-" bson:"password"`
	ResetPasswordToken      string             `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpires    *time.Time         `json:"-" bson:"resetPasswordExpires,omitempty"`
	VerificationCode        string             `json:"-" bson:"verificationCode,omitempty"`
	VerificationCodeExpires *time.Time         `json:"-" bson:"verificationCodeExpires,omitempty"`
	CreatedAt               time.Time          `json:"createdAt" bson:"createdAt"`
}
