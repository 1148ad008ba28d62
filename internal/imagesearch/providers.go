package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	unsplashBaseURL = "https://api.unsplash.com"
	pexelsBaseURL   = "https://api.pexels.com"
	pixabayBaseURL  = "https://pixabay.com/api"
)

type unsplashProvider struct {
	key     string
	baseURL string
	client  *http.Client
}

func (p *unsplashProvider) name() string { return "unsplash" }

func (p *unsplashProvider) search(ctx context.Context, query string, perPage int) ([]Image, error) {
	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d",
		p.baseURL, url.QueryEscape(query), perPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+p.key)

	var body struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
				Thumb   string `json:"thumb"`
			} `json:"urls"`
			AltDescription string `json:"alt_description"`
			User           struct {
				Name  string `json:"name"`
				Links struct {
					HTML string `json:"html"`
				} `json:"links"`
			} `json:"user"`
		} `json:"results"`
	}
	if err := doJSON(p.client, req, &body); err != nil {
		return nil, err
	}

	images := make([]Image, 0, len(body.Results))
	for _, r := range body.Results {
		images = append(images, Image{
			URL:          r.URLs.Regular,
			ThumbnailURL: r.URLs.Thumb,
			Description:  r.AltDescription,
			Credit:       r.User.Name,
			CreditURL:    r.User.Links.HTML,
			Source:       p.name(),
		})
	}
	return images, nil
}

type pexelsProvider struct {
	key     string
	baseURL string
	client  *http.Client
}

func (p *pexelsProvider) name() string { return "pexels" }

func (p *pexelsProvider) search(ctx context.Context, query string, perPage int) ([]Image, error) {
	endpoint := fmt.Sprintf("%s/v1/search?query=%s&per_page=%d",
		p.baseURL, url.QueryEscape(query), perPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", p.key)

	var body struct {
		Photos []struct {
			Src struct {
				Large  string `json:"large"`
				Medium string `json:"medium"`
			} `json:"src"`
			Alt             string `json:"alt"`
			Photographer    string `json:"photographer"`
			PhotographerURL string `json:"photographer_url"`
		} `json:"photos"`
	}
	if err := doJSON(p.client, req, &body); err != nil {
		return nil, err
	}

	images := make([]Image, 0, len(body.Photos))
	for _, r := range body.Photos {
		images = append(images, Image{
			URL:          r.Src.Large,
			ThumbnailURL: r.Src.Medium,
			Description:  r.Alt,
			Credit:       r.Photographer,
			CreditURL:    r.PhotographerURL,
			Source:       p.name(),
		})
	}
	return images, nil
}

type pixabayProvider struct {
	key     string
	baseURL string
	client  *http.Client
}

func (p *pixabayProvider) name() string { return "pixabay" }

func (p *pixabayProvider) search(ctx context.Context, query string, perPage int) ([]Image, error) {
	params := url.Values{}
	params.Set("key", p.key)
	params.Set("q", query)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("image_type", "photo")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var body struct {
		Hits []struct {
			LargeImageURL string `json:"largeImageURL"`
			PreviewURL    string `json:"previewURL"`
			Tags          string `json:"tags"`
			User          string `json:"user"`
			PageURL       string `json:"pageURL"`
		} `json:"hits"`
	}
	if err := doJSON(p.client, req, &body); err != nil {
		return nil, err
	}

	images := make([]Image, 0, len(body.Hits))
	for _, r := range body.Hits {
		images = append(images, Image{
			URL:          r.LargeImageURL,
			ThumbnailURL: r.PreviewURL,
			Description:  r.Tags,
			Credit:       r.User,
			CreditURL:    r.PageURL,
			Source:       p.name(),
		})
	}
	return images, nil
}

// doJSON executes a request and decodes a 200 response into out.
func doJSON(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
