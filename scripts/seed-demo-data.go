package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

const apiBase = "http://localhost:8080/api"

type User struct {
	Username string `json:"userName"`
	Password string `json:"password"`
	Token    string `json:"token"`
	UserID   string `json:"userId"`
}

type SignUpResponse struct {
	User struct {
		ID       string `json:"id"`
		Username string `json:"userName"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

func signUpUser(username, fullName, email, password string) (*User, error) {
	body, _ := json.Marshal(map[string]string{
		"userName": username,
		"fullName": fullName,
		"email":    email,
		"password": password,
	})

	resp, err := http.Post(apiBase+"/auth/sign-up", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("sign up failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result SignUpResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	return &User{
		Username: result.User.Username,
		Password: password,
		Token:    result.AccessToken,
		UserID:   result.User.ID,
	}, nil
}

func createPost(token, title string, categories []string, featured bool) error {
	body, _ := json.Marshal(map[string]interface{}{
		"title":          title,
		"authorName":     "Demo Author",
		"imageLink":      "https://picsum.photos/800/400.jpg",
		"categories":     categories,
		"description":    "Seeded demo content for local development.",
		"isFeaturedPost": featured,
	})

	req, _ := http.NewRequest("POST", apiBase+"/posts", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("create post failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

func addFavorite(token, postID string) error {
	body, _ := json.Marshal(map[string]string{"postId": postID})

	req, _ := http.NewRequest("POST", apiBase+"/favorites", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("add favorite failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

func listPosts() ([]map[string]interface{}, error) {
	resp, err := http.Get(apiBase + "/posts")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var posts []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	return posts, nil
}

func main() {
	fmt.Println("Seeding demo data...")

	writers := []struct {
		username string
		fullName string
	}{
		{"demo_alice", "Alice Demo"},
		{"demo_bob", "Bob Demo"},
		{"demo_carol", "Carol Demo"},
	}

	seeds := []struct {
		title      string
		categories []string
		featured   bool
	}{
		{"Hiking the Dolomites", []string{"Travel", "Mountains"}, true},
		{"Street Food in Penang", []string{"Food", "Culture"}, false},
		{"A Weekend in Lisbon", []string{"City", "Travel"}, true},
	}

	var users []*User
	for i, w := range writers {
		email := fmt.Sprintf("%s@example.com", w.username)
		user, err := signUpUser(w.username, w.fullName, email, "Demopass1!")
		if err != nil {
			fmt.Printf("failed to sign up %s: %v\n", w.username, err)
			os.Exit(1)
		}
		users = append(users, user)
		fmt.Printf("signed up %s\n", user.Username)

		if err := createPost(user.Token, seeds[i].title, seeds[i].categories, seeds[i].featured); err != nil {
			fmt.Printf("failed to create post for %s: %v\n", user.Username, err)
			os.Exit(1)
		}
		fmt.Printf("created post %q\n", seeds[i].title)
	}

	posts, err := listPosts()
	if err != nil {
		fmt.Printf("failed to list posts: %v\n", err)
		os.Exit(1)
	}

	// Everyone favorites the first post
	if len(posts) > 0 {
		postID, _ := posts[0]["id"].(string)
		for _, user := range users {
			if err := addFavorite(user.Token, postID); err != nil {
				fmt.Printf("failed to favorite for %s: %v\n", user.Username, err)
				os.Exit(1)
			}
		}
		fmt.Printf("favorited post %s for %d users\n", postID, len(users))
	}

	fmt.Println("Done.")
	fmt.Println("Demo credentials: demo_alice / Demopass1! (and bob, carol)")
}
