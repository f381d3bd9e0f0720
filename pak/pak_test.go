// Copyright (c) 2026 projectperil
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package pak_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/exp/mmap"

	"github.com/projectperil/peril/pak"
)

var (
	testString1 = "idunvovkjnreovmegihjbrqlkmfrjnb"
	testString2 = "idunvovkjnreovmsdvwrvnervnreegihjbrqlkmfrjnb"
)

func buildTestArchive(t *testing.T) []byte {
	t.Helper()
	builder, err := pak.NewBuilder(pak.Header{
		Author:      "projectperil",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("test/test1.txt", []byte(testString1)); err != nil {
		t.Fatal(err)
	}
	if err := builder.Add("test/test2.txt", []byte(testString2)); err != nil {
		t.Fatal(err)
	}

	buf := bytes.NewBuffer([]byte{})
	if _, err := builder.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestCreateAndReadAll(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	if f, err := ar.ReadAll("test/test1.txt"); err != nil {
		t.Error(err)
	} else if strings.Compare(string(f), testString1) != 0 {
		t.Error("test string does not match up")
	}

	if f, err := ar.ReadAll("test/test2.txt"); err != nil {
		t.Error(err)
	} else if strings.Compare(string(f), testString2) != 0 {
		t.Error("test string does not match up")
	}
}

func TestCreateAndStream(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	f, err := ar.Open("test/test1.txt")
	if err != nil {
		t.Fatal(err)
	}
	if f.Size() != int64(len(testString1)) {
		t.Errorf("wrong decompressed size: %d", f.Size())
	}

	result := make([]byte, len(testString1))
	if n, err := f.Read(result); err != nil {
		t.Error(err)
	} else if n < len(testString1) {
		t.Error("incorrect number of bytes read")
	}
	if strings.Compare(string(result), testString1) != 0 {
		t.Error("test string does not match up")
	}
}

func TestOpenMissingFile(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ar.Open("no/such/file"); err != pak.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	if _, err := pak.Open(bytes.NewReader([]byte("TAR\x00 definitely not an archive, padding padding padding"))); err != pak.ErrFileFormat {
		t.Errorf("expected ErrFileFormat, got %v", err)
	}
}

func TestHeaderIndex(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}
	header := ar.Header()
	if header.Author != "projectperil" {
		t.Errorf("author lost: %q", header.Author)
	}
	if len(header.Index) != 2 {
		t.Fatalf("expected 2 index entries, got %d", len(header.Index))
	}
	if header.Index[0].Name != "test/test1.txt" {
		t.Errorf("index order not preserved: %q", header.Index[0].Name)
	}
}

func TestOpenMmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opentest.pak")
	if err := os.WriteFile(path, buildTestArchive(t), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := mmap.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	ar, err := pak.Open(r)
	if err != nil {
		t.Fatal(err)
	}
	if f, err := ar.ReadAll("test/test2.txt"); err != nil {
		t.Error(err)
	} else if string(f) != testString2 {
		t.Error("mmap read does not match up")
	}
}

func TestConcurrentAdds(t *testing.T) {
	builder, err := pak.NewBuilder(pak.Header{
		Author:      "projectperil",
		DateCreated: time.Now().Unix(),
		Version:     1,
	})
	if err != nil {
		t.Fatal(err)
	}

	const workers = 8
	payloads := make([][]byte, workers)
	for i := range payloads {
		payloads[i] = bytes.Repeat([]byte{byte(i)}, 4096)
	}

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if err := builder.Add(fmt.Sprintf("file-%d", i), payloads[i]); err != nil {
				t.Error(err)
			}
		}()
	}
	close(start)
	wg.Wait()

	buf := bytes.NewBuffer([]byte{})
	if _, err := builder.WriteTo(buf); err != nil {
		t.Fatal(err)
	}
	ar, err := pak.Open(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < workers; i++ {
		data, err := ar.ReadAll(fmt.Sprintf("file-%d", i))
		if err != nil {
			t.Errorf("file-%d: %v", i, err)
			continue
		}
		if !bytes.Equal(data, payloads[i]) {
			t.Errorf("file-%d: content does not match up", i)
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	ar, err := pak.Open(bytes.NewReader(buildTestArchive(t)))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		want := testString1
		name := "test/test1.txt"
		if i%2 == 1 {
			want = testString2
			name = "test/test2.txt"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := ar.ReadAll(name)
			if err != nil {
				t.Error(err)
				return
			}
			if string(data) != want {
				t.Error("concurrent read returned wrong data")
			}
		}()
	}
	wg.Wait()
}
