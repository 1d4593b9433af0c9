package mongodb

import "go.mongodb.org/mongo-driver/mongo"

// isDuplicateKey verifica si un error es una violación de índice único (E11000).
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
