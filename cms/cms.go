package cms

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	log "github.com/Sirupsen/logrus"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/lexcounsel/site-backend/consts"
)

// Sync downloads every section in every locale into the passive snapshot
// directory and then makes it the active one. The previous snapshot stays
// active if anything fails.
func Sync(ctx context.Context, client *Client, assets string) (string, error) {
	passive, err := prepareDirectories(assets)
	if err != nil {
		return "", err
	}

	log.Info("Source URL: ", client.baseURL)
	log.Info("Target directory: ", passive)

	g, gCtx := errgroup.WithContext(ctx)
	for _, section := range consts.ALL_SECTIONS {
		for _, lang := range consts.ALL_LANGS {
			section, lang := section, lang
			g.Go(func() error {
				var raw json.RawMessage
				if err := client.FetchSection(gCtx, section, lang, &raw); err != nil {
					return errors.Wrapf(err, "sync %s [%s]", section, lang)
				}
				log.Infof("Syncing %s [%s]", section, lang)
				return saveItem(section, filepath.Join(passive, section, lang+".json"), raw)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	newActive, err := switchDirectories(assets)
	if err != nil {
		return "", err
	}
	log.Infof("Link was set to %s", newActive)
	return newActive, nil
}

// Snapshot reads sections saved by Sync.
type Snapshot struct {
	Assets string
}

// Load decodes the stored section into v, trying the locale fallback order
// of the requested locale.
func (s *Snapshot) Load(section, locale string, v interface{}) error {
	order, ok := consts.I18N_LANG_ORDER[locale]
	if !ok {
		order = consts.I18N_LANG_ORDER[consts.LANG_ENGLISH]
	}
	for _, lang := range order {
		path := filepath.Join(s.Assets, "active", section, lang+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, "Snapshot.Load::ReadFile %s", path)
		}
		if err := json.Unmarshal(data, v); err != nil {
			return errors.Wrapf(err, "Snapshot.Load::Unmarshal %s", path)
		}
		return nil
	}
	return errors.Errorf("No snapshot for %s [%s]", section, locale)
}

func mkdir(permissions os.FileMode, dirs ...string) error {
	dirname := filepath.Join(dirs...)
	info, err := os.Stat(dirname)
	if os.IsNotExist(err) {
		if err = os.MkdirAll(dirname, permissions); err != nil {
			return errors.Wrapf(err, "Unable to create directory: %s", dirname)
		}
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "Unable to stat directory: %s", dirname)
	}
	if info.Mode().IsRegular() {
		return errors.Errorf("Directory already exists as a file: %s", dirname)
	}
	return nil
}

func makeSectionDirectories(assets, letter string) error {
	for _, section := range consts.ALL_SECTIONS {
		if err := mkdir(0755, assets, letter, section); err != nil {
			return errors.Wrapf(err, "Unable to create directory for %s: %s", section, letter)
		}
	}
	return nil
}

// Create/clear directories. Return a passive one (i.e. symlink does not point to it)
func prepareDirectories(assets string) (string, error) {
	active := filepath.Join(assets, "active")
	if _, err := os.Lstat(active); err != nil {
		for _, letter := range []string{"a", "b"} {
			if err := makeSectionDirectories(assets, letter); err != nil {
				return "", err
			}
		}
		return filepath.Join(assets, "a"), nil
	}

	link, err := os.Readlink(active)
	if err != nil {
		return "", errors.Wrapf(err, "Unable to read link: %s", active)
	}
	newLetter := passiveLetter(link)
	if err = os.RemoveAll(filepath.Join(assets, newLetter)); err != nil {
		return "", errors.Wrapf(err, "Unable to remove directory: %s", newLetter)
	}
	if err = makeSectionDirectories(assets, newLetter); err != nil {
		return "", err
	}
	return filepath.Join(assets, newLetter), nil
}

func switchDirectories(assets string) (string, error) {
	activeLink := filepath.Join(assets, "active")
	if _, err := os.Lstat(activeLink); os.IsNotExist(err) {
		target := filepath.Join(assets, "a")
		if err = os.Symlink(target, activeLink); err != nil {
			return "", errors.Wrapf(err, "Unable to create link: %s", activeLink)
		}
		return target, nil
	}

	link, err := os.Readlink(activeLink)
	if err != nil {
		return "", errors.Wrapf(err, "Unable to read link: %s", activeLink)
	}
	target := filepath.Join(assets, passiveLetter(link))

	// Replace the link atomically.
	tmp := activeLink + ".tmp"
	_ = os.Remove(tmp)
	if err = os.Symlink(target, tmp); err != nil {
		return "", errors.Wrapf(err, "Unable to create link: %s", tmp)
	}
	if err = os.Rename(tmp, activeLink); err != nil {
		return "", errors.Wrapf(err, "Unable to replace link: %s", activeLink)
	}
	return target, nil
}

func passiveLetter(link string) string {
	if link[len(link)-1:] == "a" {
		return "b"
	}
	return "a"
}

func saveItem(name string, path string, v interface{}) error {
	m, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "saveItem::Marshal %s", name)
	}
	if err = os.WriteFile(path, m, 0644); err != nil {
		return errors.Wrapf(err, "saveItem::WriteFile %s", name)
	}
	return nil
}
