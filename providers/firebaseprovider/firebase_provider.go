package firebaseprovider

import (
	"context"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"assetverse/providers"
)

type firebaseService struct {
	client *firebaseauth.Client
}

func NewFirebaseProvider(credentialsFile string) (providers.FirebaseProvider, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, err
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		return nil, err
	}

	return &firebaseService{client: authClient}, nil
}

func (f *firebaseService) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	return f.client.VerifyIDToken(ctx, idToken)
}

func (f *firebaseService) GetUserByEmail(ctx context.Context, email string) (*firebaseauth.UserRecord, error) {
	return f.client.GetUserByEmail(ctx, email)
}

func (f *firebaseService) CreateUser(ctx context.Context, email, password, displayName string) (*firebaseauth.UserRecord, error) {
	params := (&firebaseauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(false).
		Disabled(false)

	return f.client.CreateUser(ctx, params)
}

func (f *firebaseService) UpdateProfile(ctx context.Context, uid, displayName, photoURL string) error {
	params := &firebaseauth.UserToUpdate{}
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	if photoURL != "" {
		params = params.PhotoURL(photoURL)
	}
	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}

func (f *firebaseService) DeleteAuthUser(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}
