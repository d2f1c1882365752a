package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/pivotal-cf/pwdkek/apply"
)

const latestReleaseURL = "https://api.github.com/repos/pivotal-cf/pwdkek/releases/latest"

type UpdateCommand struct{}

type gitHubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadUrl string `json:"browser_download_url"`
}

type gitHubRelease struct {
	TagName         string        `json:"tag_name"`
	TargetCommitish string        `json:"target_commitish"`
	Assets          []gitHubAsset `json:"assets"`
}

func (command *UpdateCommand) Execute(args []string) error {
	apiResponse, err := http.Get(latestReleaseURL)
	if err != nil {
		return err
	}
	defer apiResponse.Body.Close()

	if apiResponse.StatusCode != http.StatusOK {
		return errors.New("Error fetching latest release: " + apiResponse.Status)
	}

	var release gitHubRelease
	if err := json.NewDecoder(apiResponse.Body).Decode(&release); err != nil {
		return err
	}

	latestVersion := fmt.Sprintf("%s (%s)", release.TagName, release.TargetCommitish)

	if version == latestVersion {
		fmt.Println("Already up to date.")
		return nil
	}

	downloadUrl := release.assetURL(fmt.Sprintf("pwdkek_%s", runtime.GOOS))
	if downloadUrl == "" {
		return errors.New("unable to update pwdkek for this OS")
	}

	fmt.Println("Downloading new pwdkek...")
	downloadResponse, err := http.Get(downloadUrl)
	if err != nil {
		return err
	}
	defer downloadResponse.Body.Close()

	if downloadResponse.StatusCode != http.StatusOK {
		return errors.New("Error downloading latest release: " + downloadResponse.Status)
	}

	if err := apply.Apply(downloadResponse.Body); err != nil {
		return err
	}

	fmt.Printf("Upgraded from %s to %s.\n", version, latestVersion)

	return nil
}

func (r gitHubRelease) assetURL(name string) string {
	for _, asset := range r.Assets {
		if asset.Name == name {
			return asset.BrowserDownloadUrl
		}
	}

	return ""
}
