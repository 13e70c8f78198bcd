package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo persists to the dealer database: a players collection for
// accounts and stats, and a games collection holding the single shared
// game record under _id 1.
type Mongo struct {
	client  *mongo.Client
	players *mongo.Collection
	games   *mongo.Collection
}

// NewMongo connects and pings the server at the given URI
func NewMongo(ctx context.Context, uri string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database("dealer")
	return &Mongo{
		client:  client,
		players: db.Collection("players"),
		games:   db.Collection("games"),
	}, nil
}

// Close disconnects from the server
func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Mongo) CreateAccount(ctx context.Context, name, password string) error {
	count, err := s.players.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrNameTaken
	}

	_, err = s.players.InsertOne(ctx, bson.M{
		"name":         name,
		"password":     password,
		"games_played": 0,
		"wins":         0,
		"losses":       0,
		"money_win":    0,
		"money_lost":   0,
	})
	return err
}

func (s *Mongo) Authenticate(ctx context.Context, name, password string) error {
	var doc struct {
		Password string `bson:"password"`
	}
	err := s.players.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return ErrNoAccount
	}
	if err != nil {
		return err
	}
	if doc.Password != password {
		return ErrBadPassword
	}
	return nil
}

func (s *Mongo) PlayerNames(ctx context.Context) ([]string, error) {
	cursor, err := s.players.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var names []string
	for cursor.Next(ctx) {
		var doc struct {
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		names = append(names, doc.Name)
	}
	return names, cursor.Err()
}

func (s *Mongo) PlayerStats(ctx context.Context, name string) (Stats, error) {
	var stats Stats
	err := s.players.FindOne(ctx, bson.M{"name": name}).Decode(&stats)
	if err == mongo.ErrNoDocuments {
		return Stats{}, ErrNoAccount
	}
	return stats, err
}

func (s *Mongo) WritePendingAction(ctx context.Context, player, value string) error {
	_, err := s.players.UpdateOne(ctx,
		bson.M{"name": player},
		bson.M{"$set": bson.M{"pending_action": value}},
	)
	return err
}

func (s *Mongo) ReadPendingAction(ctx context.Context, player string) (string, bool, error) {
	var doc struct {
		PendingAction *string `bson:"pending_action"`
	}
	err := s.players.FindOne(ctx, bson.M{"name": player}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if doc.PendingAction == nil {
		return "", false, nil
	}
	return *doc.PendingAction, true, nil
}

func (s *Mongo) ClearPendingAction(ctx context.Context, player string) error {
	_, err := s.players.UpdateOne(ctx,
		bson.M{"name": player},
		bson.M{"$unset": bson.M{"pending_action": ""}},
	)
	return err
}

func (s *Mongo) SetSharedField(ctx context.Context, key string, value any) error {
	_, err := s.games.UpdateOne(ctx,
		bson.M{"_id": 1},
		bson.M{"$set": bson.M{key: value}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *Mongo) SharedGame(ctx context.Context) (map[string]any, error) {
	var doc map[string]any
	err := s.games.FindOne(ctx, bson.M{"_id": 1}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return map[string]any{}, nil
	}
	return doc, err
}

func (s *Mongo) ResetSharedGame(ctx context.Context) error {
	if _, err := s.games.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	_, err := s.games.InsertOne(ctx, bson.M{"_id": 1})
	return err
}

func (s *Mongo) RecordFolded(ctx context.Context, player string, moneyLost int) error {
	_, err := s.players.UpdateOne(ctx,
		bson.M{"name": player},
		bson.M{"$inc": bson.M{
			"games_played": 1,
			"losses":       1,
			"money_lost":   moneyLost,
		}},
	)
	return err
}

func (s *Mongo) RecordResult(ctx context.Context, winner string, losses map[string]int, pot int) error {
	for player, lost := range losses {
		inc := bson.M{
			"games_played": 1,
			"money_lost":   lost,
		}
		if player == winner {
			inc["wins"] = 1
			inc["money_win"] = pot
		} else {
			inc["losses"] = 1
		}

		if _, err := s.players.UpdateOne(ctx,
			bson.M{"name": player},
			bson.M{"$inc": inc},
		); err != nil {
			return err
		}
	}
	return nil
}
