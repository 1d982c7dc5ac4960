package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	EmpID           string             `json:"empId" bson:"empId"`
	Email           string             `json:"email" bson:"email"`
	Password        string             `json:"-" bson:"password"`
	Role            string             `json:"role" bson:"role"`
	LocationID      string             `json:"locationId" bson:"locationId"`
	ManagerLocation []string           `json:"managerLocation,omitempty" bson:"managerLocation,omitempty"`
	TimeModel       `bson:",inline"`
}
